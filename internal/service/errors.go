package service

import (
	"errors"

	"gorm.io/gorm"
)

// notFound 把 gorm 的 ErrRecordNotFound 换成领域错误，其他错误原样返回
func notFound(err, target error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return target
	}
	return err
}

// isDuplicateKey 唯一约束冲突，依赖连接开启 TranslateError
func isDuplicateKey(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
