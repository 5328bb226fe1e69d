//go:build unit

package api_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"

	"storefront-api/internal/domain/order"
	"storefront-api/internal/handler/api"
	resdto "storefront-api/internal/handler/dto/response"
	"storefront-api/internal/handler/middleware"
	"storefront-api/internal/pkg/ptr"
	"storefront-api/internal/usecase/commands"
	"storefront-api/tests/common/builder"
	"storefront-api/tests/common/httptest"
	"storefront-api/tests/common/testutil"
	commandsmock "storefront-api/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type OrderHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockOrderCommands
	handler      *api.OrderHandler
}

func (s *OrderHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.router.Use(middleware.ErrorHandler())

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockOrderCommands(s.mockCtrl)
	s.handler = api.NewOrderHandler(s.mockCommands)

	s.router.POST("/api/order", s.handler.Submit)
}

func (s *OrderHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestOrderHandlerSuite(t *testing.T) {
	suite.Run(t, new(OrderHandlerTestSuite))
}

func (s *OrderHandlerTestSuite) TestSubmit() {
	url := "/api/order"
	b := builder.NewOrderBuilder().WithCustomer("Dilnoza", "+998901234567", "Toshkent")
	reqBody := b.BuildDTO()
	summary := "🛒 <b>Yangi Buyurtma</b>"

	s.Run("success: maps the body and returns summary and id", func() {
		s.mockCommands.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.SubmitOrderInput) (*commands.SubmitOrderResult, error) {
				if diff := cmp.Diff(b.BuildInput(), in); diff != "" {
					s.T().Errorf("SubmitOrderInput mismatch (-want +got):\n%s", diff)
				}
				return &commands.SubmitOrderResult{OrderID: ptr.Of(int64(7)), Summary: summary}, nil
			}).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var got resdto.OrderResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &got)
		s.True(got.Success)
		s.Equal("Buyurtma muvaffaqiyatli qabul qilindi va saqlandi!", got.Message)
		s.Equal(summary, got.OrderMessage)
		s.Require().NotNil(got.OrderID)
		s.Equal(int64(7), *got.OrderID)
	})

	s.Run("not persisted: orderId is absent", func() {
		s.mockCommands.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).
			Return(&commands.SubmitOrderResult{Summary: summary}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		var raw map[string]any
		s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &raw))
		s.Equal(http.StatusOK, rec.Code)
		s.NotContains(raw, "orderId")
		s.Equal(summary, raw["orderMessage"])
	})

	s.Run("empty cart: returns 400 with the cart message", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("items", []any{}))
		s.mockCommands.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).
			Return(nil, order.ErrEmptyItems).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Savatcha bo'sh")
	})

	s.Run("other validation failures: returns 400", func() {
		s.mockCommands.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).
			Return(nil, order.ErrInvalidQuantity).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Buyurtma ma'lumotlari")
	})

	s.Run("missing total: returns 400 with the invalid order message, not the cart one", func() {
		body := testutil.DtoMap(s.T(), reqBody, func(m map[string]any) { delete(m, "total") })
		s.mockCommands.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).
			Return(nil, order.ErrTotalRequired).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Buyurtma ma'lumotlari")
		s.NotContains(rec.Body.String(), "Savatcha")
	})

	s.Run("wrong JSON types: returns 400 without calling the usecase", func() {
		body := testutil.DtoMap(s.T(), reqBody, testutil.Field("items", "almonds"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("long item and customer names are passed through to the usecase", func() {
		long := builder.NewOrderBuilder().
			With(func(b *builder.OrderBuilder) { b.Items[0].Name = strings.Repeat("n", 300) }).
			WithCustomer(strings.Repeat("c", 300), "", strings.Repeat("a", 600))
		s.mockCommands.EXPECT().SubmitOrder(gomock.Any(), long.BuildInput()).
			Return(&commands.SubmitOrderResult{Summary: summary}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, long.BuildDTO())

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("unexpected error: returns generic 500", func() {
		s.mockCommands.EXPECT().SubmitOrder(gomock.Any(), gomock.Any()).
			Return(nil, errors.New("boom")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody)

		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, middleware.MsgInternal)
	})
}
