package biz

import "connect-account-service/internal/biz/model"

// EffectivePermissions 展开角色得到去重后的权限标识.
// 结果按首次出现的顺序排列: 先按角色顺序, 角色内按权限顺序.
func EffectivePermissions(roles []model.Role) []string {
	seen := make(map[string]struct{})
	perms := make([]string, 0)
	for _, role := range roles {
		for _, p := range role.Permissions {
			if _, ok := seen[p.Code]; ok {
				continue
			}
			seen[p.Code] = struct{}{}
			perms = append(perms, p.Code)
		}
	}
	return perms
}

// RoleNames 按分配顺序返回角色名
func RoleNames(roles []model.Role) []string {
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, role.Name)
	}
	return names
}

// ContainsAll 报告 granted 是否包含 required 中的每一项
func ContainsAll(granted, required []string) bool {
	if len(required) == 0 {
		return true
	}
	set := make(map[string]struct{}, len(granted))
	for _, p := range granted {
		set[p] = struct{}{}
	}
	for _, p := range required {
		if _, ok := set[p]; !ok {
			return false
		}
	}
	return true
}
