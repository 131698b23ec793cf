package router_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/FutureNHS/futurenhs-platform/common/id"
	"github.com/FutureNHS/futurenhs-platform/internal/domain"
	"github.com/FutureNHS/futurenhs-platform/internal/http/router"
	"github.com/FutureNHS/futurenhs-platform/internal/model"
	"github.com/FutureNHS/futurenhs-platform/internal/service"
	"github.com/FutureNHS/futurenhs-platform/internal/store/memstore"
)

type memTxRunner struct {
	db *memstore.DB
}

func (r memTxRunner) WithTx(ctx context.Context, fn func(stores service.StoreProvider) error) error {
	return r.db.WithTx(ctx, func(s *memstore.Stores) error {
		return fn(s)
	})
}

type recordingPublisher struct {
	events []domain.Event
}

func (p *recordingPublisher) Publish(_ context.Context, events ...domain.Event) error {
	p.events = append(p.events, events...)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

var _ = Describe("SetupRoutes", func() {
	var (
		engine    *gin.Engine
		db        *memstore.DB
		publisher *recordingPublisher
		admin     model.User
		alice     model.User
	)

	BeforeEach(func() {
		db = memstore.New()
		publisher = &recordingPublisher{}
		admin = model.User{ID: id.New(), AuthID: uuid.New(), Name: "admin", IsPlatformAdmin: true}
		alice = model.User{ID: id.New(), AuthID: uuid.New(), Name: "alice"}
		db.AddUser(admin)
		db.AddUser(alice)

		engine = gin.New()
		services := service.NewServices(db.Stores(), memTxRunner{db: db}, publisher)
		router.SetupRoutes(engine, services, router.RouterConfig{IdentityHeader: "X-Auth-Id"})
	})

	do := func(method, path string, body string, as *model.User) (*httptest.ResponseRecorder, map[string]any) {
		req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		if as != nil {
			req.Header.Set("X-Auth-Id", as.AuthID.String())
		}
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, req)

		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		return w, resp
	}

	It("serves health", func() {
		w, resp := do(http.MethodGet, "/health", "", nil)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(resp["status"]).To(Equal("ok"))
	})

	It("runs a workspace through creation, membership and deletion", func() {
		w, resp := do(http.MethodPost, "/api/v1/workspaces", `{"title":"Nursing","description":"Leads"}`, &admin)
		Expect(w.Code).To(Equal(http.StatusCreated))
		Expect(resp["event_published"]).To(BeTrue())
		wsID := resp["workspace"].(map[string]any)["id"].(string)

		w, _ = do(http.MethodPut, "/api/v1/workspaces/"+wsID+"/members/"+id.Format(alice.ID), `{"role":"admin"}`, &admin)
		Expect(w.Code).To(Equal(http.StatusOK))

		w, resp = do(http.MethodGet, "/api/v1/workspaces/"+wsID+"/admins/"+id.Format(alice.ID), "", nil)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(resp["is_admin"]).To(BeTrue())

		w, resp = do(http.MethodGet, "/api/v1/workspaces/"+wsID+"/members?role=admin", "", nil)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(resp["members"]).To(HaveLen(1))

		w, _ = do(http.MethodPut, "/api/v1/workspaces/"+wsID+"/members/"+id.Format(alice.ID), `{"role":"NonMember"}`, &alice)
		Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))

		Expect(publisher.events).To(HaveLen(2))
		Expect(publisher.events[1].Type).To(Equal(domain.EventTypeWorkspaceMembershipChanged))

		w, _ = do(http.MethodDelete, "/api/v1/workspaces/"+wsID, "", nil)
		Expect(w.Code).To(Equal(http.StatusOK))

		w, _ = do(http.MethodGet, "/api/v1/workspaces/"+wsID, "", nil)
		Expect(w.Code).To(Equal(http.StatusNotFound))
	})

	It("forbids workspace creation by ordinary users", func() {
		w, _ := do(http.MethodPost, "/api/v1/workspaces", `{"title":"Nursing"}`, &alice)
		Expect(w.Code).To(Equal(http.StatusForbidden))
		Expect(db.TeamCount()).To(Equal(0))
		Expect(publisher.events).To(BeEmpty())
	})

	It("registers and resolves users", func() {
		carol := model.User{AuthID: uuid.New()}
		w, resp := do(http.MethodPost, "/api/v1/users", `{"name":"Carol","email":"carol@example.nhs.uk"}`, &carol)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(resp["name"]).To(Equal("Carol"))

		w, resp = do(http.MethodGet, "/api/v1/users/me", "", &carol)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(resp["auth_id"]).To(Equal(carol.AuthID.String()))

		w, _ = do(http.MethodGet, "/api/v1/users/me", "", nil)
		Expect(w.Code).To(Equal(http.StatusUnauthorized))
	})

	It("serves event schemas", func() {
		w, resp := do(http.MethodGet, "/api/v1/events/schemas", "", nil)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(resp["schemas"]).To(HaveKey("WorkspaceCreated"))
	})
})
