//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"chershare/internal/domain/account"
	"chershare/internal/handler/api"
	"chershare/internal/handler/httperr"
	resdto "chershare/internal/handler/dto/response"
	"chershare/internal/usecase/queries"
	"chershare/tests/common/builder"
	"chershare/tests/common/httptest"
	queriesmock "chershare/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ResourceHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockResourceQueries
	handler     *api.ResourceHandler
}

func (s *ResourceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockResourceQueries(s.mockCtrl)
	s.handler = api.NewResourceHandler(s.mockQueries)

	s.router.GET("/resources/:id", s.handler.GetResource)
}

func (s *ResourceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestResourceHandlerSuite(t *testing.T) {
	suite.Run(t, new(ResourceHandlerTestSuite))
}

func (s *ResourceHandlerTestSuite) TestGetResource() {
	s.Run("success: metadata round-trips the init params", func() {
		params := builder.NewResourceBuilder().BuildParams()
		s.mockQueries.EXPECT().GetMetadata(gomock.Any(), account.ID("bike-shed.factory.test")).
			Return(&queries.ResourceMetadata{ID: "bike-shed.factory.test", Params: params}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources/bike-shed.factory.test", nil, "")
		s.Equal(http.StatusOK, rec.Code)

		var resp resdto.ResourceMetadataResponse
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &resp))
		s.Equal("bike-shed.factory.test", resp.ID)
		s.Equal(params.Title, resp.Params.Title)
		s.Equal(params.Pricing, resp.Params.Pricing)
	})

	s.Run("invalid resource id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources/UPPER", nil, "")
		s.Equal(http.StatusBadRequest, rec.Code)

		var resp httperr.Response
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &resp))
		s.Equal("Invalid resource ID format", resp.Error.Message)
	})

	s.Run("unknown resource", func() {
		s.mockQueries.EXPECT().GetMetadata(gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrResourceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources/ghost.factory.test", nil, "")
		s.Equal(http.StatusNotFound, rec.Code)

		var resp httperr.Response
		s.Require().NoError(httptest.DecodeResponseBody(s.T(), rec.Body, &resp))
		s.Equal("Resource not found", resp.Error.Message)
	})
}
