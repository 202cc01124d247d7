package swagger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/smartystreets/goconvey/convey"
)

func serve(mux *http.ServeMux, method, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest(method, path, http.NoBody))
	return w
}

func TestRegister(t *testing.T) {
	convey.Convey("Given the docs routes on a mux", t, func() {
		mux := http.NewServeMux()
		Register(context.Background(), mux)

		convey.Convey("Then the document is served as YAML", func() {
			w := serve(mux, http.MethodGet, "/openapi.yaml")
			convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			convey.So(w.Header().Get("Content-Type"), convey.ShouldEqual, "application/yaml; charset=utf-8")
			convey.So(w.Body.Bytes(), convey.ShouldResemble, OpenAPI)
		})

		convey.Convey("Then the ReDoc page loads the document", func() {
			w := serve(mux, http.MethodGet, "/api-docs")
			body := w.Body.String()
			convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			convey.So(w.Header().Get("Content-Type"), convey.ShouldStartWith, "text/html")
			convey.So(body, convey.ShouldContainSubstring, RedocScript)
			convey.So(body, convey.ShouldContainSubstring, "'/openapi.yaml'")
		})

		convey.Convey("Then writes are not found", func() {
			for _, path := range []string{"/openapi.yaml", "/api-docs"} {
				convey.So(serve(mux, http.MethodPost, path).Code, convey.ShouldEqual, http.StatusNotFound)
			}
		})
	})

	convey.Convey("Given no mux", t, func() {
		convey.So(func() { Register(context.Background(), nil) }, convey.ShouldPanic)
	})
}

func TestOpenAPIDocument(t *testing.T) {
	convey.Convey("Given the embedded document", t, func() {
		doc, err := yaml.Parser().Unmarshal(OpenAPI)

		convey.Convey("Then it parses and lists every route", func() {
			convey.So(err, convey.ShouldBeNil)
			paths, ok := doc["paths"].(map[string]any)
			convey.So(ok, convey.ShouldBeTrue)
			for _, p := range []string{
				"/healthz", "/stats", "/colleges", "/colleges/{id}", "/top",
				"/regions", "/regions/{region}/cities",
				"/sessions", "/sessions/{id}", "/sessions/{id}/actions",
			} {
				convey.So(paths, convey.ShouldContainKey, p)
			}
		})
	})
}
