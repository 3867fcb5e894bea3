package registry

import (
	"context"
	"fmt"

	confv1 "connect-account-service/internal/conf/v1"

	"github.com/google/uuid"
	"github.com/hashicorp/consul/api"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// HealthPath 供 consul 探测的健康检查路径
const HealthPath = "/check.v1.CheckService/Ready"

// Module 提供 consul 注册
var Module = fx.Module("registry",
	fx.Provide(NewConsulRegistry),
)

// Agent 是 consul agent 中注册相关的子集
type Agent interface {
	ServiceRegister(service *api.AgentServiceRegistration) error
	ServiceDeregister(serviceID string) error
}

// ConsulRegistry 在启动时注册服务实例, 停止时注销
type ConsulRegistry struct {
	agent        Agent
	registration *api.AgentServiceRegistration
	l            *zap.Logger
}

// NewConsulRegistry 未开启 consul 时返回 nil 注册器
func NewConsulRegistry(lc fx.Lifecycle, conf *confv1.Bootstrap, serviceName string, logger *zap.Logger) (*ConsulRegistry, error) {
	if conf.Registry == nil || conf.Registry.Consul == nil || !conf.Registry.Consul.Enabled {
		logger.Info("Consul registry disabled")
		return nil, nil
	}
	c := conf.Registry.Consul

	client, err := api.NewClient(&api.Config{Address: c.Address})
	if err != nil {
		return nil, fmt.Errorf("create consul client: %w", err)
	}

	r := New(client.Agent(), serviceName, c, logger)
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return r.Register()
		},
		OnStop: func(ctx context.Context) error {
			return r.Deregister()
		},
	})
	return r, nil
}

// New 构造注册器, 实例 ID 为 serviceName-uuid
func New(agent Agent, serviceName string, c *confv1.Registry_Consul, logger *zap.Logger) *ConsulRegistry {
	id := fmt.Sprintf("%s-%s", serviceName, uuid.NewString())
	return &ConsulRegistry{
		agent: agent,
		registration: &api.AgentServiceRegistration{
			ID:      id,
			Name:    serviceName,
			Address: c.ServiceHost,
			Port:    int(c.ServicePort),
			Tags:    c.Tags,
			Check: &api.AgentServiceCheck{
				HTTP:                           fmt.Sprintf("http://%s:%d%s", c.ServiceHost, c.ServicePort, HealthPath),
				Method:                         "POST",
				Header:                         map[string][]string{"Content-Type": {"application/json"}},
				Body:                           "{}",
				Interval:                       "10s",
				Timeout:                        "3s",
				DeregisterCriticalServiceAfter: "1m",
			},
		},
		l: logger,
	}
}

// ID 返回实例 ID
func (r *ConsulRegistry) ID() string {
	return r.registration.ID
}

func (r *ConsulRegistry) Register() error {
	if err := r.agent.ServiceRegister(r.registration); err != nil {
		return fmt.Errorf("consul register %s: %w", r.registration.ID, err)
	}
	r.l.Info("Service registered to consul",
		zap.String("id", r.registration.ID),
		zap.String("address", r.registration.Address),
		zap.Int("port", r.registration.Port),
	)
	return nil
}

func (r *ConsulRegistry) Deregister() error {
	if err := r.agent.ServiceDeregister(r.registration.ID); err != nil {
		r.l.Error("Failed to deregister from consul", zap.String("id", r.registration.ID), zap.Error(err))
		return err
	}
	r.l.Info("Service deregistered from consul", zap.String("id", r.registration.ID))
	return nil
}
