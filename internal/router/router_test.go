package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"pet-shop-api/internal/adapters/auth/jwtauth"
	"pet-shop-api/internal/router"
)

const (
	ownerID    = "0b8f8c1e-8a4b-4c1e-9a55-6f1d2a3b4c01"
	strangerID = "0b8f8c1e-8a4b-4c1e-9a55-6f1d2a3b4c02"
	adminID    = "0b8f8c1e-8a4b-4c1e-9a55-6f1d2a3b4c03"
)

type actor struct {
	id   string
	role string
}

var (
	owner    = actor{id: ownerID}
	stranger = actor{id: strangerID}
	admin    = actor{id: adminID, role: "admin"}
	anon     = actor{}
)

func newDevServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{DevAuth: true}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_EndToEnd_CompleteProfile(t *testing.T) {
	ts := newDevServer(t)
	now := time.Now().UTC()

	// 1) Owner crea mascota
	petID := createResource(t, ts.URL, "/pets", owner, map[string]any{
		"name":       "Milo",
		"species":    "dog",
		"breed":      "mixed",
		"gender":     "male",
		"birth_date": now.AddDate(-3, 0, 0).Format("2006-01-02"),
		"weight":     12.5,
	})

	// 2) Staff carga historial
	createResource(t, ts.URL, "/pets/"+petID+"/medical-records", admin, map[string]any{
		"visit_date":      now.AddDate(0, -1, 0).Format(time.RFC3339),
		"visit_type":      "checkup",
		"reason":          "control anual",
		"weight_at_visit": 12.1,
		"service_cost":    50,
	})
	createResource(t, ts.URL, "/pets/"+petID+"/vaccinations", admin, map[string]any{
		"vaccine_name":      "Rabia",
		"administered_date": now.AddDate(-1, 0, 0).Format(time.RFC3339),
		"next_due_date":     now.AddDate(0, 0, 10).Format(time.RFC3339),
	})
	createResource(t, ts.URL, "/pets/"+petID+"/grooming", admin, map[string]any{
		"session_date":       now.AddDate(0, 0, -7).Format(time.RFC3339),
		"services_performed": []string{"bath", "nails"},
		"service_cost":       30,
		"duration_minutes":   60,
	})
	serviceID := createResource(t, ts.URL, "/services", admin, map[string]any{
		"name":             "Baño completo",
		"category":         "grooming",
		"price":            30,
		"duration_minutes": 60,
	})

	// 3) Owner reserva turno
	createResource(t, ts.URL, "/appointments", owner, map[string]any{
		"pet_id":     petID,
		"service_id": serviceID,
		"date":       now.Add(72 * time.Hour).Format(time.RFC3339),
	})

	// 4) Owner ve el perfil completo
	st, body := doReq(t, ts.URL, "GET", "/pets/"+petID+"/complete-profile", owner, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 complete profile, got %d body=%s", st, string(body))
	}

	var prof struct {
		Pet struct {
			ID string `json:"id"`
		} `json:"pet"`
		MedicalHistory struct {
			TotalVisits int `json:"total_visits"`
		} `json:"medical_history"`
		WeightHistory []struct {
			Source string `json:"source"`
		} `json:"weight_history"`
		Vaccinations struct {
			UpcomingVaccines []json.RawMessage `json:"upcoming_vaccines"`
			TotalVaccines    int               `json:"total_vaccines"`
		} `json:"vaccinations"`
		GroomingHistory struct {
			TotalSessions int        `json:"total_sessions"`
			LastGrooming  *time.Time `json:"last_grooming"`
		} `json:"grooming_history"`
		Appointments struct {
			Upcoming          []json.RawMessage `json:"upcoming"`
			Past              []json.RawMessage `json:"past"`
			TotalAppointments int               `json:"total_appointments"`
		} `json:"appointments"`
		Summary struct {
			Age                *float64   `json:"age"`
			NextVaccinationDue *time.Time `json:"next_vaccination_due"`
			TotalSpentMedical  float64    `json:"total_spent_medical"`
			TotalSpentGrooming float64    `json:"total_spent_grooming"`
		} `json:"summary"`
	}
	if err := json.Unmarshal(body, &prof); err != nil {
		t.Fatalf("decode profile: %v body=%s", err, string(body))
	}

	if prof.Pet.ID != petID {
		t.Fatalf("expected pet %s, got %s", petID, prof.Pet.ID)
	}
	if prof.MedicalHistory.TotalVisits != 1 || prof.Vaccinations.TotalVaccines != 1 || prof.GroomingHistory.TotalSessions != 1 {
		t.Fatalf("unexpected totals: %s", string(body))
	}
	if len(prof.WeightHistory) != 2 {
		t.Fatalf("expected manual + medical weight entries, got %d", len(prof.WeightHistory))
	}
	if len(prof.Vaccinations.UpcomingVaccines) != 1 || prof.Summary.NextVaccinationDue == nil {
		t.Fatalf("expected one upcoming vaccine, body=%s", string(body))
	}
	if len(prof.Appointments.Upcoming) != 1 || len(prof.Appointments.Past) != 0 || prof.Appointments.TotalAppointments != 1 {
		t.Fatalf("unexpected appointments: %s", string(body))
	}
	if prof.GroomingHistory.LastGrooming == nil {
		t.Fatalf("expected last_grooming")
	}
	if prof.Summary.Age == nil || *prof.Summary.Age < 2.9 || *prof.Summary.Age > 3.1 {
		t.Fatalf("expected age ~3, got %v", prof.Summary.Age)
	}
	if prof.Summary.TotalSpentMedical != 50 || prof.Summary.TotalSpentGrooming != 30 {
		t.Fatalf("unexpected spend: medical=%v grooming=%v", prof.Summary.TotalSpentMedical, prof.Summary.TotalSpentGrooming)
	}

	// 5) Admin también lo ve
	if st, body := doReq(t, ts.URL, "GET", "/pets/"+petID+"/complete-profile", admin, nil); st != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d body=%s", st, string(body))
	}

	// 6) Otro usuario no
	if st, _ := doReq(t, ts.URL, "GET", "/pets/"+petID+"/complete-profile", stranger, nil); st != http.StatusForbidden {
		t.Fatalf("expected 403 for another user, got %d", st)
	}

	// 7) Sin auth
	if st, _ := doReq(t, ts.URL, "GET", "/pets/"+petID+"/complete-profile", anon, nil); st != http.StatusUnauthorized {
		t.Fatalf("expected 401 without auth, got %d", st)
	}

	// 8) Baja lógica => 404
	if st, body := doReq(t, ts.URL, "DELETE", "/pets/"+petID, owner, nil); st != http.StatusNoContent {
		t.Fatalf("expected 204 delete pet, got %d body=%s", st, string(body))
	}
	if st, _ := doReq(t, ts.URL, "GET", "/pets/"+petID+"/complete-profile", owner, nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 after soft delete, got %d", st)
	}
}

func TestHTTP_CompleteProfile_BadID(t *testing.T) {
	ts := newDevServer(t)

	st, body := doReq(t, ts.URL, "GET", "/pets/not-a-uuid/complete-profile", owner, nil)
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed id, got %d", st)
	}
	if !strings.Contains(string(body), "uuid") {
		t.Fatalf("expected uuid error message, got %s", string(body))
	}
}

func TestHTTP_CompleteProfile_UnknownPet(t *testing.T) {
	ts := newDevServer(t)

	st, _ := doReq(t, ts.URL, "GET", "/pets/9f0c3f34-1111-4d7c-8c39-000000000000/complete-profile", owner, nil)
	if st != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown pet, got %d", st)
	}
}

func TestHTTP_RecordsRequireStaff(t *testing.T) {
	ts := newDevServer(t)

	petID := createResource(t, ts.URL, "/pets", owner, map[string]any{"name": "Luna", "species": "cat"})

	st, _ := doReq(t, ts.URL, "POST", "/pets/"+petID+"/medical-records", owner, map[string]any{
		"visit_date": time.Now().UTC().Format(time.RFC3339),
		"visit_type": "checkup",
		"reason":     "control",
	})
	if st != http.StatusForbidden {
		t.Fatalf("expected 403 for owner creating medical record, got %d", st)
	}
}

func TestHTTP_CatalogIsPublic(t *testing.T) {
	ts := newDevServer(t)

	createResource(t, ts.URL, "/services", admin, map[string]any{"name": "Consulta", "price": 25})

	st, body := doReq(t, ts.URL, "GET", "/services", anon, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 public catalog, got %d body=%s", st, string(body))
	}
	if st, _ := doReq(t, ts.URL, "POST", "/services", anon, map[string]any{"name": "X", "price": 1}); st != http.StatusUnauthorized {
		t.Fatalf("expected 401 creating service without auth, got %d", st)
	}
}

func TestHTTP_DevHeadersIgnoredWithoutDevMode(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, _ := doReq(t, ts.URL, "GET", "/pets", owner, nil)
	if st != http.StatusUnauthorized {
		t.Fatalf("expected 401 with debug headers outside dev mode, got %d", st)
	}
}

func TestHTTP_RegisterAndBearerToken(t *testing.T) {
	jwt, err := jwtauth.NewManager(jwtauth.Config{Secret: "test-secret", TTL: time.Hour})
	if err != nil {
		t.Fatalf("jwt manager: %v", err)
	}

	// En modo dev los tokens de /auth/register siguen autenticando.
	for _, dev := range []bool{false, true} {
		ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: jwt, Tokens: jwt, DevAuth: dev}))

		st, body := doReq(t, ts.URL, "POST", "/auth/register", anon, map[string]any{
			"email":    "ana@example.com",
			"name":     "Ana",
			"password": "supersecret",
		})
		if st != http.StatusCreated {
			ts.Close()
			t.Fatalf("dev=%v: expected 201 register, got %d body=%s", dev, st, string(body))
		}
		var sess struct {
			AccessToken string `json:"access_token"`
		}
		_ = json.Unmarshal(body, &sess)
		if sess.AccessToken == "" {
			ts.Close()
			t.Fatalf("dev=%v: register: missing token body=%s", dev, string(body))
		}

		req, _ := http.NewRequest("GET", ts.URL+"/auth/me", nil)
		req.Header.Set("Authorization", "Bearer "+sess.AccessToken)
		res, err := http.DefaultClient.Do(req)
		if err != nil {
			ts.Close()
			t.Fatalf("do request: %v", err)
		}
		res.Body.Close()
		ts.Close()
		if res.StatusCode != http.StatusOK {
			t.Fatalf("dev=%v: expected 200 /auth/me, got %d", dev, res.StatusCode)
		}
	}
}

func TestHTTP_HealthAndMetrics(t *testing.T) {
	ts := newDevServer(t)

	if st, _ := doReq(t, ts.URL, "GET", "/health", anon, nil); st != http.StatusOK {
		t.Fatalf("expected 200 health, got %d", st)
	}
	st, body := doReq(t, ts.URL, "GET", "/metrics", anon, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 metrics, got %d", st)
	}
	if !strings.Contains(string(body), "petshop_http_requests_total") {
		t.Fatalf("expected request counter in metrics output")
	}
}

func TestHTTP_SwaggerDocumentsEveryRoute(t *testing.T) {
	app := router.Build(router.Options{DevAuth: true})
	ts := httptest.NewServer(app.Handler)
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/swagger/doc.json", anon, nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 doc.json, got %d", st)
	}
	var doc struct {
		Paths map[string]map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal(body, &doc); err != nil {
		t.Fatalf("doc.json is not valid json: %v", err)
	}

	routes, ok := app.Handler.(chi.Routes)
	if !ok {
		t.Fatalf("handler is not a chi router")
	}
	err := chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		if route == "/metrics" || strings.HasPrefix(route, "/swagger/") {
			return nil
		}
		if len(route) > 1 {
			route = strings.TrimSuffix(route, "/")
		}
		if _, ok := doc.Paths[route][strings.ToLower(method)]; !ok {
			t.Errorf("route %s %s missing from swagger doc", method, route)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk routes: %v", err)
	}
}

func createResource(t *testing.T, baseURL, path string, who actor, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", path, who, payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 POST %s, got %d body=%s", path, st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("POST %s: missing id body=%s", path, string(body))
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path string, who actor, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if who.id != "" {
		req.Header.Set("X-Debug-User-ID", who.id)
	}
	if who.role != "" {
		req.Header.Set("X-Debug-Role", who.role)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
