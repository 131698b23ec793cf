package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/FutureNHS/futurenhs-platform/internal/http/handler"
	"github.com/FutureNHS/futurenhs-platform/internal/http/middleware"
	"github.com/FutureNHS/futurenhs-platform/internal/model"
	"github.com/FutureNHS/futurenhs-platform/internal/service"
)

const identityHeader = "X-Auth-Id"

var _ = Describe("WorkspaceHandler", func() {
	var (
		router *gin.Engine
		svc    *mockWorkspaceService
		authID uuid.UUID
		ws     *model.Workspace
	)

	BeforeEach(func() {
		router = gin.New()
		svc = &mockWorkspaceService{}
		authID = uuid.New()
		ws = &model.Workspace{
			ID:            1001,
			Title:         "Nursing",
			Description:   "Nursing leads",
			AdminsTeamID:  2001,
			MembersTeamID: 2002,
		}

		h := handler.NewWorkspaceHandler(svc)
		identity := middleware.RequireIdentity(identityHeader)
		router.POST("/workspaces", identity, h.Create)
		router.GET("/workspaces", h.List)
		router.GET("/workspaces/:id", h.Get)
		router.PUT("/workspaces/:id", h.Update)
		router.DELETE("/workspaces/:id", h.Delete)
		router.GET("/workspaces/:id/members", h.Members)
		router.GET("/workspaces/:id/admins/:userId", h.IsAdmin)
		router.PUT("/workspaces/:id/members/:userId", identity, h.ChangeMembership)
	})

	do := func(method, path string, body any, withIdentity bool) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		if body != nil {
			Expect(json.NewEncoder(&buf).Encode(body)).To(Succeed())
		}
		req := httptest.NewRequest(method, path, &buf)
		req.Header.Set("Content-Type", "application/json")
		if withIdentity {
			req.Header.Set(identityHeader, authID.String())
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	decode := func(w *httptest.ResponseRecorder) map[string]any {
		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		return resp
	}

	Describe("Create", func() {
		It("returns 201 with the workspace", func() {
			svc.createFn = func(_ context.Context, title, description string, requester model.AuthID) (*model.Workspace, error) {
				Expect(title).To(Equal("Nursing"))
				Expect(description).To(Equal("Nursing leads"))
				Expect(requester).To(Equal(authID))
				return ws, nil
			}

			w := do(http.MethodPost, "/workspaces", map[string]string{
				"title":       "Nursing",
				"description": "Nursing leads",
			}, true)

			Expect(w.Code).To(Equal(http.StatusCreated))
			resp := decode(w)
			Expect(resp["event_published"]).To(BeTrue())
			Expect(resp["workspace"]).To(HaveKeyWithValue("id", "1001"))
			Expect(resp["workspace"]).To(HaveKeyWithValue("admins_team_id", "2001"))
		})

		It("returns 401 without an identity", func() {
			w := do(http.MethodPost, "/workspaces", map[string]string{"title": "Nursing"}, false)
			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})

		It("returns 400 without a title", func() {
			w := do(http.MethodPost, "/workspaces", map[string]string{"description": "x"}, true)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 403 for a requester who is not a platform admin", func() {
			svc.createFn = func(context.Context, string, string, model.AuthID) (*model.Workspace, error) {
				return nil, fmt.Errorf("%w: only platform admins can create workspaces", service.ErrUnauthorized)
			}

			w := do(http.MethodPost, "/workspaces", map[string]string{"title": "Nursing"}, true)

			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(decode(w)["error"]).To(ContainSubstring("only platform admins"))
		})

		It("reports a committed workspace whose event was not published", func() {
			svc.createFn = func(context.Context, string, string, model.AuthID) (*model.Workspace, error) {
				return ws, fmt.Errorf("%w: broker down", service.ErrEventNotPublished)
			}

			w := do(http.MethodPost, "/workspaces", map[string]string{"title": "Nursing"}, true)

			Expect(w.Code).To(Equal(http.StatusCreated))
			Expect(decode(w)["event_published"]).To(BeFalse())
		})

		It("hides infrastructure errors", func() {
			svc.createFn = func(context.Context, string, string, model.AuthID) (*model.Workspace, error) {
				return nil, errors.New("pq: connection refused to 10.0.0.7")
			}

			w := do(http.MethodPost, "/workspaces", map[string]string{"title": "Nursing"}, true)

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(w.Body.String()).NotTo(ContainSubstring("10.0.0.7"))
			Expect(decode(w)["error"]).To(Equal("failed to create workspace"))
		})
	})

	Describe("Get", func() {
		It("returns the workspace", func() {
			svc.getFn = func(_ context.Context, id int64) (*model.Workspace, error) {
				Expect(id).To(Equal(int64(1001)))
				return ws, nil
			}

			w := do(http.MethodGet, "/workspaces/1001", nil, false)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)["title"]).To(Equal("Nursing"))
		})

		It("returns 404 for an unknown workspace", func() {
			svc.getFn = func(context.Context, int64) (*model.Workspace, error) {
				return nil, fmt.Errorf("workspace %w", service.ErrNotFound)
			}
			Expect(do(http.MethodGet, "/workspaces/1001", nil, false).Code).To(Equal(http.StatusNotFound))
		})

		It("returns 400 for a malformed id", func() {
			Expect(do(http.MethodGet, "/workspaces/abc", nil, false).Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("List", func() {
		It("returns every workspace", func() {
			svc.listFn = func(context.Context) ([]model.Workspace, error) {
				return []model.Workspace{*ws}, nil
			}

			w := do(http.MethodGet, "/workspaces", nil, false)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)["workspaces"]).To(HaveLen(1))
		})
	})

	Describe("Update and Delete", func() {
		It("updates without an identity", func() {
			svc.updateFn = func(_ context.Context, id int64, title, description string) (*model.Workspace, error) {
				updated := *ws
				updated.Title, updated.Description = title, description
				return &updated, nil
			}

			w := do(http.MethodPut, "/workspaces/1001", map[string]string{"title": "Midwifery"}, false)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)["title"]).To(Equal("Midwifery"))
		})

		It("deletes and returns the deleted workspace", func() {
			svc.deleteFn = func(context.Context, int64) (*model.Workspace, error) {
				return ws, nil
			}

			w := do(http.MethodDelete, "/workspaces/1001", nil, false)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)["id"]).To(Equal("1001"))
		})
	})

	Describe("Members", func() {
		It("passes the parsed role filter", func() {
			var got *model.RoleFilter
			svc.membersFn = func(_ context.Context, _ int64, filter *model.RoleFilter) ([]model.User, error) {
				got = filter
				return []model.User{{ID: 7, Name: "alice"}}, nil
			}

			w := do(http.MethodGet, "/workspaces/1001/members?role=non_admin", nil, false)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(got).NotTo(BeNil())
			Expect(*got).To(Equal(model.RoleFilterNonAdmin))
			Expect(decode(w)["members"]).To(HaveLen(1))
		})

		It("passes no filter when role is absent", func() {
			called := false
			svc.membersFn = func(_ context.Context, _ int64, filter *model.RoleFilter) ([]model.User, error) {
				called = true
				Expect(filter).To(BeNil())
				return []model.User{}, nil
			}

			w := do(http.MethodGet, "/workspaces/1001/members", nil, false)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(called).To(BeTrue())
			Expect(decode(w)["members"]).To(BeEmpty())
		})

		It("returns 400 for an unknown filter", func() {
			Expect(do(http.MethodGet, "/workspaces/1001/members?role=owner", nil, false).Code).To(Equal(http.StatusBadRequest))
		})
	})

	Describe("IsAdmin", func() {
		It("returns the admin flag", func() {
			svc.isAdminFn = func(_ context.Context, workspaceID, userID int64) (bool, error) {
				return workspaceID == 1001 && userID == 7, nil
			}

			w := do(http.MethodGet, "/workspaces/1001/admins/7", nil, false)

			Expect(w.Code).To(Equal(http.StatusOK))
			resp := decode(w)
			Expect(resp["is_admin"]).To(BeTrue())
			Expect(resp["user_id"]).To(Equal("7"))
		})
	})

	Describe("ChangeMembership", func() {
		It("changes the role on behalf of the requester", func() {
			svc.changeMembershipFn = func(_ context.Context, workspaceID, targetUserID int64, role model.Role, requester model.AuthID) (*model.Workspace, error) {
				Expect(workspaceID).To(Equal(int64(1001)))
				Expect(targetUserID).To(Equal(int64(7)))
				Expect(role).To(Equal(model.RoleNonAdmin))
				Expect(requester).To(Equal(authID))
				return ws, nil
			}

			w := do(http.MethodPut, "/workspaces/1001/members/7", map[string]string{"role": "NonAdmin"}, true)

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(decode(w)["event_published"]).To(BeTrue())
		})

		It("returns 422 for self-demotion", func() {
			svc.changeMembershipFn = func(context.Context, int64, int64, model.Role, model.AuthID) (*model.Workspace, error) {
				return nil, fmt.Errorf("%w: users cannot change their own workspace membership", service.ErrInvalidOperation)
			}

			w := do(http.MethodPut, "/workspaces/1001/members/7", map[string]string{"role": "Admin"}, true)

			Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
			Expect(decode(w)["error"]).To(ContainSubstring("own workspace membership"))
		})

		It("returns 403 for a requester without standing", func() {
			svc.changeMembershipFn = func(context.Context, int64, int64, model.Role, model.AuthID) (*model.Workspace, error) {
				return nil, service.ErrUnauthorized
			}

			w := do(http.MethodPut, "/workspaces/1001/members/7", map[string]string{"role": "Admin"}, true)
			Expect(w.Code).To(Equal(http.StatusForbidden))
		})

		It("returns 400 for an unknown role", func() {
			w := do(http.MethodPut, "/workspaces/1001/members/7", map[string]string{"role": "Owner"}, true)
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 401 for a malformed identity", func() {
			req := httptest.NewRequest(http.MethodPut, "/workspaces/1001/members/7", bytes.NewBufferString(`{"role":"Admin"}`))
			req.Header.Set(identityHeader, "not-a-uuid")
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusUnauthorized))
		})
	})
})
