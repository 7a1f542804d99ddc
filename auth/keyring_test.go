package auth

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/zalando/go-keyring"
)

func TestRedisPassword(t *testing.T) {
	Convey("Given a mock keyring", t, func() {
		keyring.MockInit()

		Convey("A missing password is empty, not an error", func() {
			password, err := RedisPassword()
			So(err, ShouldBeNil)
			So(password, ShouldBeEmpty)
		})

		Convey("A stored password round-trips and can be deleted", func() {
			So(SetRedisPassword("hunter2"), ShouldBeNil)

			password, err := RedisPassword()
			So(err, ShouldBeNil)
			So(password, ShouldEqual, "hunter2")

			So(DeleteRedisPassword(), ShouldBeNil)
			So(DeleteRedisPassword(), ShouldBeNil)

			password, err = RedisPassword()
			So(err, ShouldBeNil)
			So(password, ShouldBeEmpty)
		})
	})
}
