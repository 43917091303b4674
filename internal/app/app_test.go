package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/suite"

	"github.com/GlebRadaev/gigmart/internal/config"
	"github.com/GlebRadaev/gigmart/internal/dto"
)

type ApplicationSuite struct {
	suite.Suite
	app    *Application
	ctx    context.Context
	cancel context.CancelFunc
	router chi.Router
}

func TestApplication(t *testing.T) {
	suite.Run(t, &ApplicationSuite{})
}

func (s *ApplicationSuite) SetupTest() {
	s.app = New()
	s.ctx, s.cancel = context.WithCancel(context.Background())
}

func (s *ApplicationSuite) TearDownTest() {
	s.cancel()
	s.app.wg.Wait()
}

func (s *ApplicationSuite) wireInMemory(rateLimit float64, burst int) {
	s.app.cfg = &config.Config{
		Storage:       config.StorageMemory,
		JWTSecret:     "test-secret",
		TokenTTL:      time.Minute,
		LockTimeout:   time.Second,
		RewardPolicy:  "on_accept",
		RateLimit:     rateLimit,
		RateBurst:     burst,
		BcryptCost:    4,
		AdminLogin:    "root",
		AdminPassword: "root-password",
	}
	s.Require().NoError(s.app.cfg.Validate())
	s.Require().NoError(s.app.wire(s.ctx))

	s.router = chi.NewRouter()
	s.app.api.InitRoutes(s.router)
}

func (s *ApplicationSuite) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		s.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	s.router.ServeHTTP(rr, req)
	return rr
}

func (s *ApplicationSuite) register(login string) string {
	rr := s.do(http.MethodPost, "/api/user/register", "", dto.RegisterRequestDTO{Login: login, Password: login + "-password"})
	s.Require().Equal(http.StatusOK, rr.Code, rr.Body.String())
	return rr.Header().Get("Authorization")[len("Bearer "):]
}

func (s *ApplicationSuite) TestWait() {
	ctx, cancel := context.WithCancel(context.Background())

	s.app.errCh = make(chan error)
	go func() {
		s.app.errCh <- fmt.Errorf("mock error")
	}()

	err := s.app.Wait(ctx, cancel)

	s.Require().Error(err)
	s.Contains(err.Error(), "mock error")
}

func (s *ApplicationSuite) TestInMemoryMarketplace() {
	s.wireInMemory(0, 0)

	rr := s.do(http.MethodPost, "/api/user/login", "", dto.LoginRequestDTO{Login: "root", Password: "root-password"})
	s.Require().Equal(http.StatusOK, rr.Code)
	adminToken := rr.Header().Get("Authorization")[len("Bearer "):]

	posterToken := s.register("poster")
	workerToken := s.register("worker")

	s.Equal(http.StatusUnauthorized, s.do(http.MethodGet, "/api/user/balance", "", nil).Code)
	s.Equal(http.StatusForbidden, s.do(http.MethodPost, "/api/admin/ledger/credit", workerToken,
		dto.LedgerAdjustRequestDTO{AccountID: 1, Amount: 10}).Code)

	rr = s.do(http.MethodGet, "/api/user/balance", posterToken, nil)
	s.Require().Equal(http.StatusOK, rr.Code)
	var balance dto.BalanceResponseDTO
	s.Require().NoError(json.NewDecoder(rr.Body).Decode(&balance))
	s.Equal(int64(0), balance.Balance)
	posterID := balance.AccountID

	rr = s.do(http.MethodPost, "/api/admin/ledger/credit", adminToken, dto.LedgerAdjustRequestDTO{AccountID: posterID, Amount: 100})
	s.Require().Equal(http.StatusOK, rr.Code, rr.Body.String())

	rr = s.do(http.MethodPost, "/api/gigs", posterToken, dto.CreateGigRequestDTO{Title: "Paint the fence", Reward: 30})
	s.Require().Equal(http.StatusCreated, rr.Code, rr.Body.String())
	var gig dto.GigResponseDTO
	s.Require().NoError(json.NewDecoder(rr.Body).Decode(&gig))
	s.Equal("OPEN", gig.State)

	rr = s.do(http.MethodGet, "/api/gigs?limit=10", workerToken, nil)
	s.Require().Equal(http.StatusOK, rr.Code)

	rr = s.do(http.MethodPost, fmt.Sprintf("/api/gigs/%d/applications", gig.ID), workerToken, dto.ApplyRequestDTO{Message: "me"})
	s.Require().Equal(http.StatusCreated, rr.Code, rr.Body.String())
	var app dto.ApplicationResponseDTO
	s.Require().NoError(json.NewDecoder(rr.Body).Decode(&app))

	s.Equal(http.StatusConflict, s.do(http.MethodPost, fmt.Sprintf("/api/gigs/%d/applications", gig.ID), workerToken, nil).Code)
	s.Equal(http.StatusForbidden, s.do(http.MethodGet, fmt.Sprintf("/api/gigs/%d/applications", gig.ID), workerToken, nil).Code)

	rr = s.do(http.MethodPost, fmt.Sprintf("/api/gigs/%d/accept", gig.ID), posterToken, dto.AcceptRequestDTO{ApplicantID: app.ApplicantID})
	s.Require().Equal(http.StatusOK, rr.Code, rr.Body.String())
	s.Require().NoError(json.NewDecoder(rr.Body).Decode(&gig))
	s.Equal("ASSIGNED", gig.State)

	s.Equal(http.StatusNotFound, s.do(http.MethodDelete, fmt.Sprintf("/api/applications/%d", app.ID), workerToken, nil).Code)

	rr = s.do(http.MethodGet, "/api/user/balance", workerToken, nil)
	s.Require().NoError(json.NewDecoder(rr.Body).Decode(&balance))
	s.Equal(int64(30), balance.Balance)

	rr = s.do(http.MethodPost, "/api/user/balance/transfer", workerToken, dto.TransferRequestDTO{To: posterID, Amount: 31})
	s.Equal(http.StatusPaymentRequired, rr.Code)

	rr = s.do(http.MethodGet, "/api/user/ledger", workerToken, nil)
	s.Equal(http.StatusOK, rr.Code)

	rr = s.do(http.MethodGet, "/metrics", "", nil)
	s.Equal(http.StatusOK, rr.Code)
	s.Contains(rr.Body.String(), "gigmart_ledger_operations_total")
}

func (s *ApplicationSuite) TestRateLimit() {
	s.wireInMemory(1, 2)

	s.Equal(http.StatusUnauthorized, s.do(http.MethodGet, "/api/gigs", "", nil).Code)
	s.Equal(http.StatusUnauthorized, s.do(http.MethodGet, "/api/gigs", "", nil).Code)

	rr := s.do(http.MethodGet, "/api/gigs", "", nil)
	s.Equal(http.StatusTooManyRequests, rr.Code)
	s.NotEmpty(rr.Header().Get("Retry-After"))
}

func (s *ApplicationSuite) TestWire_UnknownPolicy() {
	s.app.cfg = &config.Config{Storage: config.StorageMemory, LockTimeout: time.Second, RewardPolicy: "sometimes"}
	s.Error(s.app.wire(s.ctx))
}
