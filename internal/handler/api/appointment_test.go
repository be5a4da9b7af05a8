//go:build unit

package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"taller-api/internal/handler/api"
	resdto "taller-api/internal/handler/dto/response"
	"taller-api/internal/usecase/commands"
	"taller-api/internal/usecase/queries"
	"taller-api/tests/common/builder"
	"taller-api/tests/common/httptest"
	"taller-api/tests/common/testutil"
	commandsmock "taller-api/tests/mock/commands"
	queriesmock "taller-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AppointmentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAppointmentCommands
	mockQueries  *queriesmock.MockAppointmentQueries
	handler      *api.AppointmentHandler
	userID       uuid.UUID
}

func (s *AppointmentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAppointmentCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAppointmentQueries(s.mockCtrl)
	s.handler = api.NewAppointmentHandler(s.mockCommands, s.mockQueries)
	s.userID = uuid.New()

	// Mock middleware behavior: a bearer token stands in for an authenticated user
	authStub := func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
		}
		c.Next()
	}

	s.router.GET("/appointments", s.handler.ListAppointments)
	s.router.GET("/appointments/:id", s.handler.GetAppointment)
	s.router.POST("/appointments", s.handler.CreateAppointment)
	s.router.PUT("/appointments/:id", s.handler.UpdateAppointment)
	s.router.DELETE("/appointments/:id", s.handler.DeleteAppointment)
	s.router.PUT("/appointments/reserve/:id", authStub, s.handler.ReserveAppointment)
}

func (s *AppointmentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAppointmentHandlerSuite(t *testing.T) {
	suite.Run(t, new(AppointmentHandlerTestSuite))
}

func (s *AppointmentHandlerTestSuite) TestListAppointments() {
	s.Run("success: returns all slots", func() {
		views := []*queries.AppointmentView{
			builder.NewAppointmentBuilder().BuildReadModel(),
			builder.NewAppointmentBuilder().WithID(2).WithTitle("Brake inspection").BuildReadModel(),
		}
		s.mockQueries.EXPECT().List(gomock.Any()).Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments", nil, "")

		var response []*resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
		s.Equal("Oil change", response[0].Title)
		s.Equal("Brake inspection", response[1].Title)
	})

	s.Run("success: returns empty array when no slots exist", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return([]*queries.AppointmentView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments", nil, "")

		var response []*resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
	})

	s.Run("error: 500 on query failure", func() {
		s.mockQueries.EXPECT().List(gomock.Any()).Return(nil, errors.New("database error")).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *AppointmentHandlerTestSuite) TestGetAppointment() {
	s.Run("success: returns slot by ID", func() {
		view := builder.NewAppointmentBuilder().WithID(42).BuildReadModel()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(42)).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/42", nil, "")

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(42), response.ID)
		s.Equal("AVAILABLE", response.Status)
	})

	s.Run("error: 404 when slot does not exist", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), int64(999)).
			Return(nil, queries.ErrAppointmentNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/999", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Appointment not found")
	})

	s.Run("error: 400 on non-numeric ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/appointments/abc", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid appointment ID format")
	})
}

func (s *AppointmentHandlerTestSuite) TestCreateAppointment() {
	url := "/appointments"
	reqBody := builder.NewAppointmentBuilder().BuildCreateDTO()

	s.Run("success: returns 201 Created", func() {
		view := builder.NewAppointmentBuilder().BuildReadModel()
		s.mockCommands.EXPECT().Create(gomock.Any(), reqBody).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.Title, response.Title)
		s.Equal("AVAILABLE", response.Status)
	})

	s.Run("success: a status value in the body is accepted and ignored", func() {
		reqWithStatus := reqBody
		reqWithStatus.Status = "RESERVED"
		view := builder.NewAppointmentBuilder().BuildReadModel()
		s.mockCommands.EXPECT().Create(gomock.Any(), reqWithStatus).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqWithStatus, "token")

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("AVAILABLE", response.Status)
	})

	s.Run("error: 400 Bad Request on missing required fields", func() {
		for _, field := range []string{"title", "start", "end"} {
			s.Run(fmt.Sprintf("missing field: %s", field), func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field(field, nil))

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
			})
		}
	})

	s.Run("error: 400 Bad Request when slot times are rejected", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, commands.ErrAppointmentValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid appointment data")
	})
}

func (s *AppointmentHandlerTestSuite) TestUpdateAppointment() {
	reqBody := builder.NewAppointmentBuilder().BuildUpdateDTO()

	s.Run("success: returns 200 OK with updated slot", func() {
		view := builder.NewAppointmentBuilder().BuildReadModel()
		s.mockCommands.EXPECT().Update(gomock.Any(), int64(1), reqBody).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/appointments/1", reqBody, "token")

		var response resdto.AppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.Title, response.Title)
	})

	s.Run("error: 404 when slot does not exist", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), int64(999), reqBody).
			Return(nil, commands.ErrAppointmentNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/appointments/999", reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Appointment not found")
	})

	s.Run("error: 400 on unknown status value", func() {
		requestMap := testutil.DtoMap(s.T(), reqBody, testutil.Field("status", "PENDING"))
		s.mockCommands.EXPECT().Update(gomock.Any(), int64(1), gomock.Any()).
			Return(nil, commands.ErrAppointmentValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/appointments/1", requestMap, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid appointment data")
	})
}

func (s *AppointmentHandlerTestSuite) TestDeleteAppointment() {
	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), int64(1)).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/appointments/1", nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 when slot does not exist", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), int64(999)).
			Return(commands.ErrAppointmentNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/appointments/999", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Appointment not found")
	})
}

func (s *AppointmentHandlerTestSuite) TestReserveAppointment() {
	url := "/appointments/reserve/1"

	s.Run("success: returns 200 OK with confirmation message", func() {
		view := builder.NewAppointmentBuilder().ReservedBy(s.userID).BuildReadModel()
		s.mockCommands.EXPECT().Reserve(gomock.Any(), int64(1), s.userID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "token")

		var response resdto.ReserveAppointmentResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("Appointment reserved", response.Message)
		s.Equal("RESERVED", response.Appointment.Status)
		s.Require().NotNil(response.Appointment.OwnerUserID)
		s.Equal(s.userID, *response.Appointment.OwnerUserID)
	})

	s.Run("error: 400 when the slot was taken first", func() {
		s.mockCommands.EXPECT().Reserve(gomock.Any(), int64(1), s.userID).
			Return(nil, commands.ErrAppointmentConflict).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Appointment is no longer available")
	})

	s.Run("error: 404 when slot does not exist", func() {
		s.mockCommands.EXPECT().Reserve(gomock.Any(), int64(999), s.userID).
			Return(nil, commands.ErrAppointmentNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/appointments/reserve/999", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Appointment not found")
	})

	s.Run("error: 500 when authentication context is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}
