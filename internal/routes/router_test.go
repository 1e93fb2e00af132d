package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"admin-console/internal/authz"
	"admin-console/internal/dto"
	"admin-console/internal/navigation"
	"admin-console/internal/routepath"
	"admin-console/internal/services"
	"admin-console/pkg/config"
	"admin-console/pkg/customvalidator"
	"admin-console/pkg/logger"
	"admin-console/pkg/service"
	"admin-console/pkg/types"
)

type stubAuthService struct {
	session *services.Session
}

func (s *stubAuthService) Login(context.Context, dto.LoginDTO) (*dto.CodeSentDTO, error) {
	return &dto.CodeSentDTO{ChallengeID: "c1", ExpiresIn: 300, ResendIn: 60}, nil
}

func (s *stubAuthService) SendCode(context.Context, dto.SendCodeDTO) (*dto.CodeSentDTO, error) {
	return &dto.CodeSentDTO{ChallengeID: "c2", ExpiresIn: 300, ResendIn: 60}, nil
}

func (s *stubAuthService) VerifyCode(context.Context, dto.VerifyCodeDTO) (*services.Session, error) {
	return s.session, nil
}

func (s *stubAuthService) RefreshTokens(context.Context, string) (*services.Session, error) {
	return s.session, nil
}

func (s *stubAuthService) Me(_ context.Context, claims *dto.UserClaims) (*dto.UserPublicDTO, error) {
	return &dto.UserPublicDTO{ID: claims.UserID, Permissions: claims.Permissions}, nil
}

type stubRoleService struct{}

func (stubRoleService) GetRoles(context.Context, types.Filter) ([]dto.RoleDTO, uint64, error) {
	return []dto.RoleDTO{{ID: 1, Name: "Админ"}}, 1, nil
}

func (stubRoleService) GetRole(_ context.Context, id uint64) (*dto.RoleDetailsDTO, error) {
	return &dto.RoleDetailsDTO{RoleDTO: dto.RoleDTO{ID: id}}, nil
}

func (stubRoleService) UpdateRolePermissions(_ context.Context, id uint64, _ dto.UpdateRolePermissionsDTO) (*dto.RoleDetailsDTO, error) {
	return &dto.RoleDetailsDTO{RoleDTO: dto.RoleDTO{ID: id}}, nil
}

type stubPermissionService struct{}

func (stubPermissionService) GetPermissions(context.Context) ([]dto.PermissionDTO, error) {
	return []dto.PermissionDTO{{ID: 1, Title: authz.CanViewUsers}}, nil
}

type RouterSuite struct {
	suite.Suite
	e   *echo.Echo
	jwt service.JWTService
}

func (s *RouterSuite) SetupTest() {
	s.setup(config.UnclassifiedDeny)
}

func (s *RouterSuite) setup(policy string) {
	s.e = echo.New()
	v, err := customvalidator.New()
	s.Require().NoError(err)
	s.e.Validator = v

	s.jwt = service.NewJWTService("router-secret", time.Hour, 24*time.Hour)
	loggers := logger.NopLoggers()
	cfg := &config.Config{
		Server: config.ServerConfig{AllowedOrigins: []string{"http://localhost:5173"}},
		Access: config.AccessConfig{
			UnclassifiedPolicy: policy,
			UnauthorizedPath:   routepath.Unauthorized,
			LoginPath:          routepath.Login,
			TopBarVisible:      4,
		},
	}

	session := &services.Session{
		User:         dto.UserPublicDTO{ID: 1, Email: "ops@example.com", Permissions: []string{authz.CanViewUsers}},
		AccessToken:  "access",
		RefreshToken: "refresh",
	}
	svc := &Services{
		Auth:       &stubAuthService{session: session},
		Role:       stubRoleService{},
		Permission: stubPermissionService{},
		Navigation: services.NewNavigationService(navigation.DefaultTree, cfg.Access.TopBarVisible),
		Access:     services.NewAccessService(),
		Report:     services.NewReportService(authz.DefaultTable, navigation.DefaultTree, loggers.Main),
	}
	InitRouter(s.e, svc, s.jwt, loggers, cfg)
}

func (s *RouterSuite) token(perms ...string) string {
	access, _, err := s.jwt.GenerateTokens(service.TokenSubject{UserID: 1, RoleID: 1, Permissions: perms})
	s.Require().NoError(err)
	return access
}

func (s *RouterSuite) do(method, target, token, accept string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	if accept != "" {
		req.Header.Set(echo.HeaderAccept, accept)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Body    json.RawMessage `json:"body"`
}

func (s *RouterSuite) decode(rec *httptest.ResponseRecorder, out interface{}) {
	var env envelope
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &env))
	s.Require().True(env.Status, rec.Body.String())
	s.Require().NoError(json.Unmarshal(env.Body, out))
}

func (s *RouterSuite) TestPageAllowedByExactEntry() {
	rec := s.do(http.MethodGet, routepath.UserDetails, s.token(authz.CanViewUsers), echo.MIMEApplicationJSON, "")
	s.Equal(http.StatusOK, rec.Code)

	var page dto.PageDTO
	s.decode(rec, &page)
	s.Equal(routepath.UserDetails, page.Pattern)
	s.Equal("Пользователи", page.Title)
}

func (s *RouterSuite) TestPageAllowedByPattern() {
	rec := s.do(http.MethodGet, routepath.UserDetail("99"), s.token(authz.CanViewUsers), echo.MIMEApplicationJSON, "")
	s.Equal(http.StatusOK, rec.Code)

	var page dto.PageDTO
	s.decode(rec, &page)
	s.Equal(routepath.UserDetailPattern, page.Pattern)
	s.Equal(map[string]string{"id": "99"}, page.Params)
}

func (s *RouterSuite) TestPageDeniedRedirectsWithFrom() {
	rec := s.do(http.MethodGet, routepath.Roles, s.token(authz.CanViewUsers), echo.MIMETextHTML, "")

	s.Equal(http.StatusSeeOther, rec.Code)
	loc, err := url.Parse(rec.Header().Get(echo.HeaderLocation))
	s.Require().NoError(err)
	s.Equal(routepath.Unauthorized, loc.Path)
	s.Equal(routepath.Roles, loc.Query().Get("from"))
}

func (s *RouterSuite) TestPageWithoutSessionGoesToLogin() {
	rec := s.do(http.MethodGet, routepath.Dashboard, "", echo.MIMETextHTML, "")

	s.Equal(http.StatusSeeOther, rec.Code)
	s.True(strings.HasPrefix(rec.Header().Get(echo.HeaderLocation), routepath.Login+"?from="))
}

func (s *RouterSuite) TestUnauthorizedPage() {
	rec := s.do(http.MethodGet, routepath.UnauthorizedFrom("", routepath.Roles), "", "", "")

	s.Equal(http.StatusForbidden, rec.Code)
	var body dto.UnauthorizedDTO
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	s.Equal(routepath.Roles, body.From)
}

func (s *RouterSuite) TestUnknownRoute() {
	rec := s.do(http.MethodGet, "/definitely/missing", "", echo.MIMEApplicationJSON, "")
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *RouterSuite) assertNotFoundEnvelope(rec *httptest.ResponseRecorder) {
	s.Equal(http.StatusNotFound, rec.Code, rec.Body.String())
	var env envelope
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &env))
	s.False(env.Status)
	s.Equal("Страница не найдена", env.Message)
}

func (s *RouterSuite) TestUnknownConsolePathIsNotFound() {
	token := s.token(authz.CanViewUsers, authz.CanViewRoles)

	s.assertNotFoundEnvelope(s.do(http.MethodGet, routepath.AdminPrefix+"/does-not-exist", token, echo.MIMEApplicationJSON, ""))
	s.assertNotFoundEnvelope(s.do(http.MethodGet, routepath.AdminPrefix+"/does-not-exist", token, echo.MIMETextHTML, ""))
	s.assertNotFoundEnvelope(s.do(http.MethodGet, routepath.UserDetails+"/", token, echo.MIMEApplicationJSON, ""))
}

func (s *RouterSuite) TestUnknownConsolePathIsNotFoundWhenUnclassifiedAllowed() {
	s.setup(config.UnclassifiedAllow)

	s.assertNotFoundEnvelope(s.do(http.MethodGet, routepath.AdminPrefix+"/does-not-exist", s.token(authz.CanViewUsers), echo.MIMEApplicationJSON, ""))
}

func (s *RouterSuite) TestPageIDWithEscapedSlash() {
	target := routepath.UserDetail("a/b")
	s.Equal(routepath.UserDetails+"/a%2Fb", target)

	rec := s.do(http.MethodGet, target, s.token(authz.CanViewUsers), echo.MIMEApplicationJSON, "")
	s.Equal(http.StatusOK, rec.Code, rec.Body.String())
	var page dto.PageDTO
	s.decode(rec, &page)
	s.Equal(routepath.UserDetailPattern, page.Pattern)
	s.Equal(map[string]string{"id": "a/b"}, page.Params)

	rec = s.do(http.MethodGet, target, s.token(authz.CanViewRoles), echo.MIMEApplicationJSON, "")
	s.Equal(http.StatusForbidden, rec.Code)
	var denied dto.UnauthorizedDTO
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &denied))
	s.Equal(target, denied.From)
}

func (s *RouterSuite) TestPageIDWithEscapedSlashStillRestrictedWhenUnclassifiedAllowed() {
	s.setup(config.UnclassifiedAllow)

	rec := s.do(http.MethodGet, routepath.UserDetail("a/b"), s.token(authz.CanViewRoles), echo.MIMEApplicationJSON, "")
	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *RouterSuite) TestNavigationTree() {
	rec := s.do(http.MethodGet, "/api/navigation", s.token(authz.CanViewLedger), "", "")
	s.Equal(http.StatusOK, rec.Code)

	var tree []dto.NavNodeDTO
	s.decode(rec, &tree)
	s.Require().Len(tree, 2)
	s.Equal("Финансы", tree[1].Title)
	s.Require().Len(tree[1].Items, 1)
	s.Equal(routepath.Ledger, tree[1].Items[0].Items[0].Path)
}

func (s *RouterSuite) TestNavigationHTML() {
	rec := s.do(http.MethodGet, "/console/nav?active="+url.QueryEscape(routepath.UserDetail("5")), s.token(authz.CanViewUsers), echo.MIMETextHTML, "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get(echo.HeaderContentType), echo.MIMETextHTML)
	s.Contains(rec.Body.String(), `aria-current="page"`)
	s.NotContains(rec.Body.String(), routepath.Roles)
}

func (s *RouterSuite) TestRouteAccessAPI() {
	rec := s.do(http.MethodGet, "/api/access/route?path="+url.QueryEscape(routepath.Roles), s.token(authz.CanListRoles), "", "")
	s.Equal(http.StatusOK, rec.Code)

	var got dto.RouteAccessDTO
	s.decode(rec, &got)
	s.True(got.Allowed)
	s.Equal(string(authz.ClassRestricted), got.Classification)

	rec = s.do(http.MethodGet, "/api/access/route", s.token(), "", "")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterSuite) TestEvaluateAPI() {
	rec := s.do(http.MethodPost, "/api/access/evaluate", s.token(authz.CanViewUsers),
		"", `{"required":["can_view_users","can_view_roles"],"mode":"all"}`)
	s.Equal(http.StatusOK, rec.Code)

	var got dto.EvaluateResultDTO
	s.decode(rec, &got)
	s.False(got.Allowed)

	rec = s.do(http.MethodPost, "/api/access/evaluate", s.token(authz.CanViewUsers), "", `{"mode":"some"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterSuite) TestSystemRoutesRequirePermission() {
	s.Equal(http.StatusForbidden, s.do(http.MethodGet, "/api/system/roles", s.token(authz.CanViewRoles), "", "").Code)
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/api/system/roles", s.token(authz.CanListRoles), "", "").Code)
	s.Equal(http.StatusUnauthorized, s.do(http.MethodGet, "/api/system/roles", "", echo.MIMEApplicationJSON, "").Code)

	rec := s.do(http.MethodPut, "/api/system/roles/3/permissions", s.token(authz.CanEditRoles), "", `{"permission_ids":[1,2]}`)
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodPut, "/api/system/roles/3/permissions", s.token(authz.CanEditRoles), "", `{"permission_ids":[]}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *RouterSuite) TestAccessMatrixExport() {
	rec := s.do(http.MethodGet, "/api/system/access-matrix/export", s.token(authz.CanViewPermissions), "", "")

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Header().Get(echo.HeaderContentDisposition), "access_matrix_")
	s.NotZero(rec.Body.Len())
}

func (s *RouterSuite) TestVerifyCodeSetsCookies() {
	rec := s.do(http.MethodPost, "/api/auth/verify_code", "", "", `{"email":"ops@example.com","code":"123456"}`)
	s.Equal(http.StatusOK, rec.Code, rec.Body.String())

	cookies := map[string]*http.Cookie{}
	for _, c := range rec.Result().Cookies() {
		cookies[c.Name] = c
	}
	s.Require().Contains(cookies, "authToken")
	s.Require().Contains(cookies, "refreshToken")
	s.Require().Contains(cookies, "userData")
	s.True(cookies["refreshToken"].HttpOnly)
	s.False(cookies["userData"].HttpOnly)
}

func (s *RouterSuite) TestLogoutClearsCookies() {
	rec := s.do(http.MethodPost, "/api/auth/logout", "", "", "")
	s.Equal(http.StatusOK, rec.Code)

	cleared := 0
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			cleared++
		}
	}
	s.Equal(3, cleared)
}

func (s *RouterSuite) TestMe() {
	rec := s.do(http.MethodGet, "/api/auth/me", s.token(authz.CanViewUsers), "", "")
	s.Equal(http.StatusOK, rec.Code)

	var me dto.UserPublicDTO
	s.decode(rec, &me)
	s.Equal([]string{authz.CanViewUsers}, me.Permissions)
}

func TestRouterSuite(t *testing.T) {
	suite.Run(t, new(RouterSuite))
}
