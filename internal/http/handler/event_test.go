package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/FutureNHS/futurenhs-platform/internal/http/handler"
)

var _ = Describe("EventHandler", func() {
	var router *gin.Engine

	BeforeEach(func() {
		router = gin.New()
		h := handler.NewEventHandler()
		router.GET("/events/schemas", h.Schemas)
		router.GET("/events/schemas/:type", h.Schema)
	})

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	It("lists a schema for every event type", func() {
		w := get("/events/schemas")
		Expect(w.Code).To(Equal(http.StatusOK))

		var resp struct {
			Schemas map[string]json.RawMessage `json:"schemas"`
		}
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp.Schemas).To(HaveKey("WorkspaceCreated"))
		Expect(resp.Schemas).To(HaveKey("WorkspaceMembershipChanged"))
		Expect(resp.Schemas).To(HaveKey("FolderDeleted"))
	})

	It("describes the payload fields", func() {
		w := get("/events/schemas/WorkspaceMembershipChanged")
		Expect(w.Code).To(Equal(http.StatusOK))

		var schema struct {
			Properties           map[string]any `json:"properties"`
			AdditionalProperties any            `json:"additionalProperties"`
		}
		Expect(json.Unmarshal(w.Body.Bytes(), &schema)).To(Succeed())
		Expect(schema.Properties).To(HaveKey("requestingUserId"))
		Expect(schema.Properties).To(HaveKey("affectedRole"))
		Expect(schema.AdditionalProperties).To(BeFalse())
	})

	It("returns 404 for an unknown type", func() {
		Expect(get("/events/schemas/Nope").Code).To(Equal(http.StatusNotFound))
	})
})
