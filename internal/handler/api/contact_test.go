//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"storefront-api/internal/domain/contact"
	"storefront-api/internal/handler/api"
	resdto "storefront-api/internal/handler/dto/response"
	"storefront-api/internal/handler/middleware"
	"storefront-api/internal/usecase/commands"
	"storefront-api/tests/common/builder"
	"storefront-api/tests/common/httptest"
	"storefront-api/tests/common/testutil"
	commandsmock "storefront-api/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ContactHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockContactCommands
	handler      *api.ContactHandler
}

func (s *ContactHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockContactCommands(s.mockCtrl)
	s.handler = api.NewContactHandler(s.mockCommands)

	s.router.POST("/api/contact", s.handler.Submit)
}

func (s *ContactHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestContactHandlerSuite(t *testing.T) {
	suite.Run(t, new(ContactHandlerTestSuite))
}

func (s *ContactHandlerTestSuite) TestSubmit() {
	url := "/api/contact"
	reqBody := builder.NewContactBuilder().BuildDTO()

	s.Run("success: returns 200 with the fixed message", func() {
		s.mockCommands.EXPECT().SubmitContact(gomock.Any(), builder.NewContactBuilder().BuildInput()).
			Return(&commands.SubmitContactResult{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var got resdto.ContactResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.True(got.Success)
		s.Equal("Xabaringiz muvaffaqiyatli yuborildi va saqlandi!", got.Message)
	})

	s.Run("validation failure: returns 400", func() {
		for _, field := range []string{"name", "email", "subject", "message"} {
			s.Run("missing "+field, func() {
				body := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))
				s.mockCommands.EXPECT().SubmitContact(gomock.Any(), gomock.Any()).
					Return(nil, contact.ErrNameRequired).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Barcha maydonlar")
			})
		}
	})

	s.Run("empty body reaches validation", func() {
		s.mockCommands.EXPECT().SubmitContact(gomock.Any(), commands.SubmitContactInput{}).
			Return(nil, contact.ErrNameRequired).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Barcha maydonlar")
	})

	s.Run("malformed JSON: returns 400 without calling the usecase", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, `{"name":`)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("long fields are passed through to the usecase", func() {
		long := builder.NewContactBuilder().With(func(b *builder.ContactBuilder) {
			b.Name = strings.Repeat("a", 300)
			b.Message = strings.Repeat("m", 10001)
		})
		s.mockCommands.EXPECT().SubmitContact(gomock.Any(), long.BuildInput()).
			Return(&commands.SubmitContactResult{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, long.BuildDTO())

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("unexpected error: returns generic 500", func() {
		s.mockCommands.EXPECT().SubmitContact(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, middleware.MsgInternal)
		s.NotContains(rec.Body.String(), "boom")
	})
}
