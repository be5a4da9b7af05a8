//go:build e2e

package appointment_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"
	"time"

	"taller-api/internal/domain/user"
	"taller-api/internal/handler/dto/request"
	resdto "taller-api/internal/handler/dto/response"
	"taller-api/tests/common/authtest"
	"taller-api/tests/common/dbtest"
	"taller-api/tests/common/httptest"
	"taller-api/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const appointmentsURL = "/api/appointments"

type appointmentSuite struct {
	e2e.SharedSuite
}

func TestAppointmentSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(appointmentSuite))
}

func (s *appointmentSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "cliente@example.com", "cliente")
	dbtest.CreateTestUser(s.T(), s.DB, "negocio@example.com", "negocio")
}

func (s *appointmentSuite) slotStart() time.Time {
	return time.Now().Add(24 * time.Hour).Truncate(time.Hour)
}

func (s *appointmentSuite) TestListAndGet() {
	s.Run("公開一覧と詳細取得", func() {
		t := s.T()
		start := s.slotStart()
		id := dbtest.CreateTestAppointment(t, s.DB, "Oil change", start, start.Add(time.Hour))

		// 未認証でも一覧が見られること
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, appointmentsURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var list []*resdto.AppointmentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &list))
		require.Len(t, list, 1)
		require.Equal(t, "Oil change", list[0].Title)
		require.Equal(t, "AVAILABLE", list[0].Status)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%d", appointmentsURL, id), nil, "")
		require.Equal(t, http.StatusOK, w.Code)

		var got resdto.AppointmentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &got))
		require.Equal(t, id, got.ID)
	})

	s.Run("存在しないIDは404", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, appointmentsURL+"/99999", nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *appointmentSuite) TestCreate() {
	s.Run("negocioはスロットを作成できる", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "negocio@example.com", "password123")
		start := s.slotStart()

		reqBody := request.CreateAppointmentRequest{
			Title: "Brake inspection",
			Start: start,
			End:   start.Add(time.Hour),
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created resdto.AppointmentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, "AVAILABLE", created.Status)
		require.Nil(t, created.OwnerUserID)
	})

	s.Run("bodyのstatus指定は無視されAVAILABLEで作成される", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "negocio@example.com", "password123")
		start := s.slotStart()

		reqBody := request.CreateAppointmentRequest{
			Title:  "Brake inspection",
			Start:  start,
			End:    start.Add(time.Hour),
			Status: "RESERVED",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created resdto.AppointmentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.Equal(t, "AVAILABLE", created.Status)
		require.Nil(t, created.OwnerUserID)
	})

	s.Run("clienteによる作成は403", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "cliente@example.com", "password123")
		start := s.slotStart()

		reqBody := request.CreateAppointmentRequest{
			Title: "Brake inspection",
			Start: start,
			End:   start.Add(time.Hour),
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, reqBody, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("未認証の作成は401", func() {
		t := s.T()
		start := s.slotStart()

		reqBody := request.CreateAppointmentRequest{
			Title: "Brake inspection",
			Start: start,
			End:   start.Add(time.Hour),
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("開始が終了より後なら400", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "negocio@example.com", "password123")
		start := s.slotStart()

		reqBody := request.CreateAppointmentRequest{
			Title: "Brake inspection",
			Start: start.Add(time.Hour),
			End:   start,
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, appointmentsURL, reqBody, token)
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func (s *appointmentSuite) TestUpdateAndDelete() {
	s.Run("negocioはスロットを更新できる", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "negocio@example.com", "password123")
		start := s.slotStart()
		id := dbtest.CreateTestAppointment(t, s.DB, "Oil change", start, start.Add(time.Hour))

		reqBody := request.UpdateAppointmentRequest{
			Title:  "Full service",
			Start:  start,
			End:    start.Add(2 * time.Hour),
			Status: "COMPLETED",
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf("%s/%d", appointmentsURL, id), reqBody, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated resdto.AppointmentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &updated))
		require.Equal(t, "Full service", updated.Title)
		require.Equal(t, "COMPLETED", updated.Status)
	})

	s.Run("AVAILABLEへ戻すと所有者が解放される", func() {
		t := s.T()
		negocioToken := authtest.LoginUser(t, s.Router, "negocio@example.com", "password123")
		clienteToken := authtest.LoginUser(t, s.Router, "cliente@example.com", "password123")
		start := s.slotStart()
		id := dbtest.CreateTestAppointment(t, s.DB, "Oil change", start, start.Add(time.Hour))

		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf("%s/reserve/%d", appointmentsURL, id), nil, clienteToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		reqBody := request.UpdateAppointmentRequest{
			Title:  "Oil change",
			Start:  start,
			End:    start.Add(time.Hour),
			Status: "AVAILABLE",
		}
		w = httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf("%s/%d", appointmentsURL, id), reqBody, negocioToken)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var updated resdto.AppointmentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &updated))
		require.Equal(t, "AVAILABLE", updated.Status)
		require.Nil(t, updated.OwnerUserID)
	})

	s.Run("negocioはスロットを削除できる", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "negocio@example.com", "password123")
		start := s.slotStart()
		id := dbtest.CreateTestAppointment(t, s.DB, "Oil change", start, start.Add(time.Hour))

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			fmt.Sprintf("%s/%d", appointmentsURL, id), nil, token)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet,
			fmt.Sprintf("%s/%d", appointmentsURL, id), nil, "")
		require.Equal(t, http.StatusNotFound, w.Code)

		// 二重削除は404で、他のスロットには影響しない
		w = httptest.PerformRequest(t, s.Router, http.MethodDelete,
			fmt.Sprintf("%s/%d", appointmentsURL, id), nil, token)
		require.Equal(t, http.StatusNotFound, w.Code)

		var count int
		err := s.DB.QueryRow(t.Context(), "SELECT count(*) FROM appointments").Scan(&count)
		require.NoError(t, err)
		require.Equal(t, 0, count)
	})

	s.Run("clienteによる削除は403", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "cliente@example.com", "password123")
		start := s.slotStart()
		id := dbtest.CreateTestAppointment(t, s.DB, "Oil change", start, start.Add(time.Hour))

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete,
			fmt.Sprintf("%s/%d", appointmentsURL, id), nil, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})
}

func (s *appointmentSuite) TestReserve() {
	s.Run("clienteはスロットを予約できる", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "cliente@example.com", "password123")
		start := s.slotStart()
		id := dbtest.CreateTestAppointment(t, s.DB, "Oil change", start, start.Add(time.Hour))

		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf("%s/reserve/%d", appointmentsURL, id), nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res resdto.ReserveAppointmentResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.Equal(t, "Appointment reserved", res.Message)
		require.Equal(t, "RESERVED", res.Appointment.Status)
		require.NotNil(t, res.Appointment.OwnerUserID)
	})

	s.Run("予約済みスロットの再予約は400", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "cliente@example.com", "password123")
		start := s.slotStart()
		id := dbtest.CreateTestAppointment(t, s.DB, "Oil change", start, start.Add(time.Hour))

		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf("%s/reserve/%d", appointmentsURL, id), nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf("%s/reserve/%d", appointmentsURL, id), nil, token)
		require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	})

	s.Run("存在しないスロットの予約は404", func() {
		t := s.T()
		token := authtest.LoginUser(t, s.Router, "cliente@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			appointmentsURL+"/reserve/99999", nil, token)
		require.Equal(t, http.StatusNotFound, w.Code)
	})

	s.Run("未認証の予約は401", func() {
		t := s.T()
		start := s.slotStart()
		id := dbtest.CreateTestAppointment(t, s.DB, "Oil change", start, start.Add(time.Hour))

		w := httptest.PerformRequest(t, s.Router, http.MethodPut,
			fmt.Sprintf("%s/reserve/%d", appointmentsURL, id), nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("同時予約では勝者が一人だけになる", func() {
		t := s.T()
		const contenders = 10

		start := s.slotStart()
		id := dbtest.CreateTestAppointment(t, s.DB, "Oil change", start, start.Add(time.Hour))

		jwtHelper := authtest.NewJWTHelper(s.Config.JWT)
		tokens := make([]string, contenders)
		for i := range contenders {
			email := fmt.Sprintf("cliente%d@example.com", i)
			userID := dbtest.CreateTestUser(t, s.DB, email, "cliente")
			tokens[i] = jwtHelper.GenerateToken(t, userID, user.RoleCliente)
		}

		codes := make(chan int, contenders)
		var wg sync.WaitGroup
		for i := range contenders {
			wg.Add(1)
			go func(token string) {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPut,
					fmt.Sprintf("%s/reserve/%d", appointmentsURL, id), nil, token)
				codes <- w.Code
			}(tokens[i])
		}
		wg.Wait()
		close(codes)

		var winners, losers int
		for code := range codes {
			switch code {
			case http.StatusOK:
				winners++
			case http.StatusBadRequest:
				losers++
			default:
				t.Fatalf("unexpected status code %d", code)
			}
		}
		require.Equal(t, 1, winners, "予約の勝者は常に一人")
		require.Equal(t, contenders-1, losers)

		// DB上でもRESERVEDかつ所有者一人であること
		var status string
		var ownerCount int
		err := s.DB.QueryRow(s.T().Context(),
			"SELECT status, (owner_user_id IS NOT NULL)::int FROM appointments WHERE id = $1", id).
			Scan(&status, &ownerCount)
		require.NoError(t, err)
		require.Equal(t, "RESERVED", status)
		require.Equal(t, 1, ownerCount)
	})
}
