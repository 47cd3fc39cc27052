package util

import "errors"

var (
	ErrEmailRegistered  = errors.New("该邮箱已被注册")
	ErrUserNotFound     = errors.New("用户不存在")
	ErrWrongCredentials = errors.New("邮箱或密码错误")

	// ErrTemplateNotFound 唯一会向调用方抛出的未找到错误：
	// 用不存在的周期模板给班级排课没有任何合理的降级方式。
	ErrTemplateNotFound = errors.New("周期模板不存在")

	ErrUnknownAssetKind = errors.New("unknown asset kind")
)
