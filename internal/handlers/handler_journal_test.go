package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gerejaku/church_ledger_app/internal/apperrors"
	"github.com/gerejaku/church_ledger_app/internal/core/domain"
	portssvc "github.com/gerejaku/church_ledger_app/internal/core/ports/services"
	"github.com/gerejaku/church_ledger_app/internal/dto"
	"github.com/gerejaku/church_ledger_app/internal/handlers"
	"github.com/gerejaku/church_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock JournalService ---
type MockJournalService struct {
	mock.Mock
}

var _ portssvc.JournalService = (*MockJournalService)(nil)

func (m *MockJournalService) CreateJournal(ctx context.Context, churchID string, req dto.CreateJournalRequest, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, churchID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) GetJournalByID(ctx context.Context, churchID string, journalID string, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, churchID, journalID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) ListJournals(ctx context.Context, churchID string, params dto.ListJournalsParams, userID string) (*dto.ListJournalsResponse, error) {
	args := m.Called(ctx, churchID, params, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListJournalsResponse), args.Error(1)
}

func (m *MockJournalService) UpdateJournal(ctx context.Context, churchID string, journalID string, req dto.UpdateJournalRequest, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, churchID, journalID, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) ApproveJournal(ctx context.Context, churchID string, journalID string, userID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, churchID, journalID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalService) DeleteJournal(ctx context.Context, churchID string, journalID string, userID string) error {
	args := m.Called(ctx, churchID, journalID, userID)
	return args.Error(0)
}

// --- Test Suite ---
type JournalHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockJournalService *MockJournalService
	jwtSecret          string

	churchID string
	userID   string
}

func (suite *JournalHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "ledger-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *JournalHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockJournalService = new(MockJournalService)

	v1 := suite.router.Group("/api/v1/churches/:church_id")
	handlers.RegisterJournalRoutes(v1, suite.mockJournalService)

	suite.churchID = uuid.NewString()
	suite.userID = uuid.NewString()
}

func (suite *JournalHandlerTestSuite) doRequest(method, url string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		suite.Require().NoError(err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}
	req, _ := http.NewRequest(method, url, reader)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.userID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *JournalHandlerTestSuite) createRequestBody() dto.CreateJournalRequest {
	return dto.CreateJournalRequest{
		Date:        time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		Description: "Persembahan minggu",
		Lines: []dto.CreateJournalLineRequest{
			{AccountID: uuid.NewString(), Debit: decimal.NewFromInt(500000)},
			{AccountID: uuid.NewString(), Credit: decimal.NewFromInt(500000)},
		},
	}
}

func (suite *JournalHandlerTestSuite) TestCreateJournal_Success() {
	body := suite.createRequestBody()
	created := &domain.JournalEntry{
		JournalID:     uuid.NewString(),
		ChurchID:      suite.churchID,
		JournalNumber: "JRN-2026-08-0001",
		JournalDate:   body.Date,
		Description:   body.Description,
		JournalType:   domain.JournalTypeGeneral,
		Status:        domain.JournalDraft,
		TotalDebit:    decimal.NewFromInt(500000),
		TotalCredit:   decimal.NewFromInt(500000),
	}
	suite.mockJournalService.On("CreateJournal",
		mock.Anything, suite.churchID, mock.AnythingOfType("dto.CreateJournalRequest"), suite.userID,
	).Return(created, nil).Once()

	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/churches/%s/journals", suite.churchID), body)

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.JournalResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("JRN-2026-08-0001", resp.JournalNumber)
	suite.Equal(string(domain.JournalDraft), resp.Status)
	suite.True(resp.IsBalanced)
	suite.mockJournalService.AssertExpectations(suite.T())
}

func (suite *JournalHandlerTestSuite) TestCreateJournal_UnbalancedIsBadRequest() {
	body := suite.createRequestBody()
	suite.mockJournalService.On("CreateJournal", mock.Anything, suite.churchID, mock.Anything, suite.userID).
		Return(nil, apperrors.NewAppError(400, "journal is not balanced: debits 500000, credits 400000", apperrors.ErrValidation)).Once()

	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/churches/%s/journals", suite.churchID), body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(w.Body.String(), "not balanced")
}

func (suite *JournalHandlerTestSuite) TestCreateJournal_LockedPeriodIsLocked() {
	body := suite.createRequestBody()
	suite.mockJournalService.On("CreateJournal", mock.Anything, suite.churchID, mock.Anything, suite.userID).
		Return(nil, apperrors.NewAppError(423, "fiscal period 2026-08 is locked", apperrors.ErrPeriodLocked)).Once()

	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/churches/%s/journals", suite.churchID), body)

	suite.Equal(http.StatusLocked, w.Code)
}

func (suite *JournalHandlerTestSuite) TestCreateJournal_TooFewLinesFailsBinding() {
	body := suite.createRequestBody()
	body.Lines = body.Lines[:1]

	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/churches/%s/journals", suite.churchID), body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockJournalService.AssertNotCalled(suite.T(), "CreateJournal", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalHandlerTestSuite) TestCreateJournal_NoTokenIsUnauthorized() {
	body := suite.createRequestBody()
	payload, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, fmt.Sprintf("/api/v1/churches/%s/journals", suite.churchID), bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockJournalService.AssertNotCalled(suite.T(), "CreateJournal", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalHandlerTestSuite) TestApproveJournal_ConflictWhenAlreadyApproved() {
	journalID := uuid.NewString()
	suite.mockJournalService.On("ApproveJournal", mock.Anything, suite.churchID, journalID, suite.userID).
		Return(nil, apperrors.NewAppError(409, "journal is already approved", apperrors.ErrConflict)).Once()

	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/churches/%s/journals/%s/approve", suite.churchID, journalID), nil)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *JournalHandlerTestSuite) TestGetJournal_NotFound() {
	journalID := uuid.NewString()
	suite.mockJournalService.On("GetJournalByID", mock.Anything, suite.churchID, journalID, suite.userID).
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, fmt.Sprintf("/api/v1/churches/%s/journals/%s", suite.churchID, journalID), nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *JournalHandlerTestSuite) TestDeleteJournal_NoContent() {
	journalID := uuid.NewString()
	suite.mockJournalService.On("DeleteJournal", mock.Anything, suite.churchID, journalID, suite.userID).
		Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, fmt.Sprintf("/api/v1/churches/%s/journals/%s", suite.churchID, journalID), nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *JournalHandlerTestSuite) TestListJournals_ForwardsCursor() {
	nextToken := "b3BhcXVl"
	expected := &dto.ListJournalsResponse{
		Journals:  []dto.JournalResponse{{JournalID: uuid.NewString(), JournalNumber: "JRN-2026-08-0002"}},
		NextToken: nil,
	}
	suite.mockJournalService.On("ListJournals", mock.Anything, suite.churchID,
		mock.MatchedBy(func(p dto.ListJournalsParams) bool {
			return p.Limit == 10 && p.NextToken != nil && *p.NextToken == nextToken
		}), suite.userID).Return(expected, nil).Once()

	w := suite.doRequest(http.MethodGet,
		fmt.Sprintf("/api/v1/churches/%s/journals?limit=10&nextToken=%s", suite.churchID, nextToken), nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.ListJournalsResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Journals, 1)
}

func TestJournalHandler(t *testing.T) {
	suite.Run(t, new(JournalHandlerTestSuite))
}
