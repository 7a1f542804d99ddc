// Package auth keeps credentials for remote backends in the system keyring.
package auth

import (
	"errors"

	"github.com/vidshelf/vidshelf/constant"
	"github.com/zalando/go-keyring"
)

const redisUser = "redis-password"

// SetRedisPassword persists the Redis store password to the system keyring.
func SetRedisPassword(password string) error {
	return keyring.Set(constant.App, redisUser, password)
}

// RedisPassword retrieves the Redis store password. A missing entry yields an empty password.
func RedisPassword() (string, error) {
	password, err := keyring.Get(constant.App, redisUser)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	return password, err
}

// DeleteRedisPassword removes the Redis store password from the system keyring.
func DeleteRedisPassword() error {
	err := keyring.Delete(constant.App, redisUser)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
