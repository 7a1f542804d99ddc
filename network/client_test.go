package network

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vidshelf/vidshelf/constant"
)

func TestClient(t *testing.T) {
	Convey("Given a server echoing the User-Agent", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(r.UserAgent()))
		}))
		defer server.Close()

		read := func(req *http.Request) string {
			res, err := Client.Do(req)
			So(err, ShouldBeNil)
			defer res.Body.Close()

			body, err := io.ReadAll(res.Body)
			So(err, ShouldBeNil)
			return string(body)
		}

		Convey("The application User-Agent is sent by default", func() {
			req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
			So(read(req), ShouldEqual, constant.UserAgent)
		})

		Convey("An explicit User-Agent is kept", func() {
			req, _ := http.NewRequest(http.MethodGet, server.URL, nil)
			req.Header.Set("User-Agent", "custom/1.0")
			So(read(req), ShouldEqual, "custom/1.0")
		})
	})
}
