package v1

// Bootstrap 服务配置根节点
type Bootstrap struct {
	Server   *Server   `json:"server,omitempty"`
	Data     *Data     `json:"data,omitempty"`
	Auth     *Auth     `json:"auth,omitempty"`
	Guard    *Guard    `json:"guard,omitempty"`
	Trace    *Trace    `json:"trace,omitempty"`
	Registry *Registry `json:"registry,omitempty"`
	Log      *Log      `json:"log,omitempty"`
}

type Server struct {
	Http *Server_HTTP `json:"http,omitempty"`
}

type Server_HTTP struct {
	Addr string `json:"addr,omitempty"`
}

type Data struct {
	Database *Data_Database `json:"database,omitempty"`
	Redis    *Data_Redis    `json:"redis,omitempty"`
}

type Data_Database struct {
	Host     string `json:"host,omitempty"`
	Port     int32  `json:"port,omitempty"`
	User     string `json:"user,omitempty"`
	Password string `json:"password,omitempty"`
	DbName   string `json:"db_name,omitempty"`
	SslMode  string `json:"ssl_mode,omitempty"`
	Timezone string `json:"timezone,omitempty"`
	MaxConns int32  `json:"max_conns,omitempty"`
	MinConns int32  `json:"min_conns,omitempty"`
	// Migrate 启动时执行 goose 迁移
	Migrate bool `json:"migrate,omitempty"`
}

type Data_Redis struct {
	Host         string `json:"host,omitempty"`
	Port         int32  `json:"port,omitempty"`
	Username     string `json:"username,omitempty"`
	Password     string `json:"password,omitempty"`
	Db           int32  `json:"db,omitempty"`
	DialTimeout  int64  `json:"dial_timeout,omitempty"`
	ReadTimeout  int64  `json:"read_timeout,omitempty"`
	WriteTimeout int64  `json:"write_timeout,omitempty"`
	PoolSize     int32  `json:"pool_size,omitempty"`
	MinIdleConns int32  `json:"min_idle_conns,omitempty"`
}

type Auth struct {
	// JwtSecret 校验上游签发的 Bearer Token
	JwtSecret string `json:"jwt_secret,omitempty"`
	// PasswordHasher md5 或 argon2id
	PasswordHasher string        `json:"password_hasher,omitempty"`
	PasswordPepper string        `json:"password_pepper,omitempty"`
	Captcha        *Auth_Captcha `json:"captcha,omitempty"`
}

// Auth_Captcha 验证码缓存 key 前缀
type Auth_Captcha struct {
	RegisterPrefix       string `json:"register_prefix,omitempty"`
	UpdatePasswordPrefix string `json:"update_password_prefix,omitempty"`
	UpdateProfilePrefix  string `json:"update_profile_prefix,omitempty"`
}

type Guard struct {
	Rules []*Guard_Rule `json:"rules,omitempty"`
}

type Guard_Rule struct {
	Procedure          string   `json:"procedure,omitempty"`
	RequireLogin       bool     `json:"require_login,omitempty"`
	RequirePermissions []string `json:"require_permissions,omitempty"`
}

type Trace struct {
	Enabled  bool   `json:"enabled,omitempty"`
	Endpoint string `json:"endpoint,omitempty"`
	Insecure bool   `json:"insecure,omitempty"`
}

type Registry struct {
	Consul *Registry_Consul `json:"consul,omitempty"`
}

type Registry_Consul struct {
	Enabled     bool     `json:"enabled,omitempty"`
	Address     string   `json:"address,omitempty"`
	ServiceHost string   `json:"service_host,omitempty"`
	ServicePort int32    `json:"service_port,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type Log struct {
	Level  string `json:"level,omitempty"`
	Format string `json:"format,omitempty"`
}
