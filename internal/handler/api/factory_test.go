//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"chershare/internal/domain/account"
	"chershare/internal/handler/api"
	resdto "chershare/internal/handler/dto/response"
	"chershare/internal/usecase/commands"
	"chershare/tests/common/builder"
	"chershare/tests/common/httptest"
	"chershare/tests/common/testutil"
	commandsmock "chershare/tests/mock/commands"
	queriesmock "chershare/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type FactoryHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockFactoryCommands
	mockQueries  *queriesmock.MockFactoryQueries
	handler      *api.FactoryHandler
}

func (s *FactoryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockFactoryCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockFactoryQueries(s.mockCtrl)
	s.handler = api.NewFactoryHandler(s.mockCommands, s.mockQueries)

	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("account_id", account.ID("alice.test"))
		c.Next()
	}

	s.router.POST("/factory/resources", authMiddleware, s.handler.CreateResource)
	s.router.PUT("/factory/owner", authMiddleware, s.handler.SetOwner)
	s.router.GET("/factory", s.handler.GetInfo)
	s.router.GET("/factory/resources/:name", s.handler.ContainsResource)
}

func (s *FactoryHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestFactoryHandlerSuite(t *testing.T) {
	suite.Run(t, new(FactoryHandlerTestSuite))
}

func validCreateResourceBody() map[string]any {
	return map[string]any{
		"name":           "beach-hut",
		"owner":          "alice.test",
		"attached_funds": uint64(50_000),
		"init_params":    builder.NewResourceBuilder().BuildParams(),
	}
}

func (s *FactoryHandlerTestSuite) TestCreateResource() {
	url := "/factory/resources"

	s.Run("success: returns 202 Accepted with the attempt id", func() {
		attemptID := uuid.New()
		s.mockCommands.EXPECT().CreateResource(gomock.Any(), account.ID("alice.test"), gomock.Any()).
			Return(&commands.CreateResourceResult{AttemptID: attemptID}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validCreateResourceBody(), "bearer-token")
		s.Equal(http.StatusAccepted, rec.Code)

		var resp resdto.CreateResourceResponse
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &resp))
		s.Equal(attemptID, resp.AttemptID)
		s.Equal("pending", resp.Status)
	})

	s.Run("unauthorized without token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validCreateResourceBody(), "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("missing required fields", func() {
		for _, field := range []string{"name", "owner", "init_params"} {
			body := validCreateResourceBody()
			testutil.Field(field, nil)(body)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "bearer-token")
			s.Equal(http.StatusBadRequest, rec.Code, "missing %s", field)
		}
	})

	s.Run("command errors map to status codes", func() {
		cases := []struct {
			err    error
			expect int
		}{
			{err: commands.ErrNameTaken, expect: http.StatusConflict},
			{err: commands.ErrInvalidName, expect: http.StatusBadRequest},
			{err: commands.ErrInvalidOwner, expect: http.StatusBadRequest},
			{err: commands.ErrDomainValidation, expect: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.mockCommands.EXPECT().CreateResource(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(nil, tc.err).Times(1)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, validCreateResourceBody(), "bearer-token")
			s.Equal(tc.expect, rec.Code, "error %v", tc.err)
		}
	})
}

func (s *FactoryHandlerTestSuite) TestSetOwner() {
	url := "/factory/owner"
	body := map[string]any{"new_owner": "heir.test", "attached_funds": uint64(1)}

	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().SetOwner(gomock.Any(), account.ID("alice.test"), "heir.test", gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("command errors map to status codes", func() {
		cases := []struct {
			err    error
			expect int
		}{
			{err: commands.ErrDepositRequired, expect: http.StatusPaymentRequired},
			{err: commands.ErrUnauthorized, expect: http.StatusForbidden},
			{err: commands.ErrSameOwner, expect: http.StatusBadRequest},
			{err: commands.ErrInvalidOwner, expect: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.mockCommands.EXPECT().SetOwner(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
				Return(tc.err).Times(1)
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, body, "bearer-token")
			s.Equal(tc.expect, rec.Code, "error %v", tc.err)
		}
	})
}

func (s *FactoryHandlerTestSuite) TestContainsResource() {
	s.mockQueries.EXPECT().ContainsResource("beach-hut").Return(true).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/factory/resources/beach-hut", nil, "")
	s.Equal(http.StatusOK, rec.Code)

	var resp resdto.ContainsResourceResponse
	s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &resp))
	s.Equal("beach-hut", resp.Name)
	s.True(resp.Exists)
}

func (s *FactoryHandlerTestSuite) TestGetInfo() {
	s.mockQueries.EXPECT().Owner().Return(account.ID("owner.test")).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/factory", nil, "")
	s.Equal(http.StatusOK, rec.Code)

	var resp resdto.FactoryInfoResponse
	s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &resp))
	s.Equal("owner.test", resp.Owner)
}
