package handlers

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"example.com/diet-planner/backend/internal/catalog"
	"example.com/diet-planner/backend/internal/planner"
	"example.com/diet-planner/backend/internal/share"
)

const samplePlanPayload = `{"age":25,"gender":"male","height_cm":170,"weight_kg":70,` +
	`"activity_level":"moderately active","goal":"weight loss","diet_preference":"no preference","meal_frequency":4}`

type structValidator struct {
	validator *validator.Validate
}

func (v structValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}

type testEnv struct {
	echo     *echo.Echo
	plans    *PlanHandler
	foods    *FoodHandler
	feedback *FeedbackHandler
	tokens   *share.TokenManager
}

func newTestEnv() testEnv {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := catalog.Default()
	tokens := share.NewTokenManager("test-secret", "diet-planner", time.Hour)

	e := echo.New()
	e.Validator = structValidator{validator: validator.New()}

	return testEnv{
		echo:     e,
		plans:    NewPlanHandler(planner.New(c, planner.WithLogger(logger)), tokens, logger),
		foods:    NewFoodHandler(c),
		feedback: NewFeedbackHandler(logger),
		tokens:   tokens,
	}
}

func (env testEnv) request(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return env.echo.NewContext(req, rec), rec
}

func (env testEnv) createPlan(t *testing.T) PlanResponse {
	t.Helper()

	c, rec := env.request(http.MethodPost, "/api/v1/plans", samplePlanPayload)
	if err := env.plans.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var response PlanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode: %v", err)
	}
	return response
}

// TestCreatePlan проверяет генерацию плана и выдачу ссылки.
func TestCreatePlan(t *testing.T) {
	response := newTestEnv().createPlan(t)

	if response.Energy.BMR != 1642 || response.Energy.TargetCalories != 2045 {
		t.Fatalf("unexpected energy: %+v", response.Energy)
	}
	if len(response.Meals) != 4 || response.Meals[0].Food.Name != "Paratha with curd" {
		t.Fatalf("unexpected meals: %+v", response.Meals)
	}
	if response.ShareToken == "" || response.ShareExpiresAt == nil {
		t.Fatal("expected share token and expiry")
	}
	if len(response.Workout) != 7 || len(response.Groceries) == 0 {
		t.Fatalf("expected workout and groceries, got %+v %+v", response.Workout, response.Groceries)
	}
}

// TestCreatePlanDefaultsMealFrequency проверяет частоту питания по умолчанию.
func TestCreatePlanDefaultsMealFrequency(t *testing.T) {
	env := newTestEnv()
	body := `{"age":30,"gender":"female","height_cm":165,"weight_kg":60}`

	c, rec := env.request(http.MethodPost, "/api/v1/plans", body)
	if err := env.plans.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var response PlanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if response.Profile.MealFrequency != defaultMealFrequency {
		t.Fatalf("expected frequency %d, got %d", defaultMealFrequency, response.Profile.MealFrequency)
	}
}

// TestCreatePlanInvalidInput проверяет ответы 400 для неверных запросов.
func TestCreatePlanInvalidInput(t *testing.T) {
	env := newTestEnv()

	cases := map[string]string{
		"broken json":    `{"age":`,
		"missing fields": `{"goal":"weight loss"}`,
		"out of range":   `{"age":12,"gender":"male","height_cm":170,"weight_kg":70}`,
		"zero frequency": `{"age":25,"gender":"male","height_cm":170,"weight_kg":70,"meal_frequency":0}`,
	}

	for name, body := range cases {
		c, rec := env.request(http.MethodPost, "/api/v1/plans", body)
		if err := env.plans.Create(c); err != nil {
			t.Fatalf("%s: unexpected error %v", name, err)
		}
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", name, rec.Code)
		}
	}
}

// TestGetSharedPlan проверяет восстановление плана по ссылке.
func TestGetSharedPlan(t *testing.T) {
	env := newTestEnv()
	created := env.createPlan(t)

	c, rec := env.request(http.MethodGet, "/api/v1/plans/shared/"+created.ShareToken, "")
	c.SetParamNames("token")
	c.SetParamValues(created.ShareToken)

	if err := env.plans.GetShared(c); err != nil {
		t.Fatalf("get shared: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var response PlanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if response.Energy != created.Energy || response.Groceries[0] != created.Groceries[0] {
		t.Fatalf("expected the same plan, got %+v", response.Energy)
	}
	if response.ShareExpiresAt != nil {
		t.Fatal("expected no expiry on shared view")
	}
}

// TestGetSharedPlanInvalidToken проверяет ответ 404 для неверной ссылки.
func TestGetSharedPlanInvalidToken(t *testing.T) {
	env := newTestEnv()

	c, rec := env.request(http.MethodGet, "/api/v1/plans/shared/bogus", "")
	c.SetParamNames("token")
	c.SetParamValues("bogus")

	if err := env.plans.GetShared(c); err != nil {
		t.Fatalf("get shared: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

// TestExportCSV проверяет выгрузку частей плана в CSV.
func TestExportCSV(t *testing.T) {
	env := newTestEnv()
	created := env.createPlan(t)

	cases := map[string]struct {
		header []string
		rows   int
	}{
		"":          {header: []string{"meal_type", "name", "calories", "protein_g", "carbs_g", "fat_g", "diet_type"}, rows: 4},
		"workout":   {header: []string{"day", "exercise"}, rows: 7},
		"groceries": {header: []string{"item"}, rows: len(created.Groceries)},
	}

	for exportType, want := range cases {
		target := "/api/v1/plans/shared/" + created.ShareToken + "/export/csv?type=" + exportType
		c, rec := env.request(http.MethodGet, target, "")
		c.SetParamNames("token")
		c.SetParamValues(created.ShareToken)

		if err := env.plans.ExportCSV(c); err != nil {
			t.Fatalf("%q: export: %v", exportType, err)
		}
		if rec.Code != http.StatusOK {
			t.Fatalf("%q: expected 200, got %d", exportType, rec.Code)
		}
		if !strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), "text/csv") {
			t.Fatalf("%q: unexpected content type %s", exportType, rec.Header().Get(echo.HeaderContentType))
		}
		if !strings.Contains(rec.Header().Get(echo.HeaderContentDisposition), "attachment") {
			t.Fatalf("%q: expected attachment disposition", exportType)
		}

		records, err := csv.NewReader(rec.Body).ReadAll()
		if err != nil {
			t.Fatalf("%q: read csv: %v", exportType, err)
		}
		if strings.Join(records[0], ",") != strings.Join(want.header, ",") {
			t.Fatalf("%q: unexpected header %v", exportType, records[0])
		}
		if len(records)-1 != want.rows {
			t.Fatalf("%q: expected %d rows, got %d", exportType, want.rows, len(records)-1)
		}
	}
}

// TestExportCSVInvalidType проверяет отказ для неизвестного типа выгрузки.
func TestExportCSVInvalidType(t *testing.T) {
	env := newTestEnv()
	created := env.createPlan(t)

	c, rec := env.request(http.MethodGet, "/export/csv?type=notes", "")
	c.SetParamNames("token")
	c.SetParamValues(created.ShareToken)

	if err := env.plans.ExportCSV(c); err != nil {
		t.Fatalf("export: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

// TestListFoods проверяет фильтры каталога.
func TestListFoods(t *testing.T) {
	env := newTestEnv()

	c, rec := env.request(http.MethodGet, "/api/v1/foods?meal_type=snack&diet_type=vegan", "")
	if err := env.foods.List(c); err != nil {
		t.Fatalf("list: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var response struct {
		Foods []struct {
			MealType string `json:"meal_type"`
			DietType string `json:"diet_type"`
		} `json:"foods"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(response.Foods) == 0 {
		t.Fatal("expected vegan snacks")
	}
	for _, food := range response.Foods {
		if food.MealType != "snack" || food.DietType != "vegan" {
			t.Fatalf("unexpected food %+v", food)
		}
	}

	c, rec = env.request(http.MethodGet, "/api/v1/foods?meal_type=brunch", "")
	if err := env.foods.List(c); err != nil {
		t.Fatalf("list: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown meal type, got %d", rec.Code)
	}
}

// TestCreateFeedback проверяет прием отзыва и валидацию оценки.
func TestCreateFeedback(t *testing.T) {
	env := newTestEnv()

	c, rec := env.request(http.MethodPost, "/api/v1/feedback", `{"rating":8,"comment":"good plan"}`)
	if err := env.feedback.Create(c); err != nil {
		t.Fatalf("feedback: %v", err)
	}
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}

	c, rec = env.request(http.MethodPost, "/api/v1/feedback", `{"rating":11}`)
	if err := env.feedback.Create(c); err != nil {
		t.Fatalf("feedback: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for rating 11, got %d", rec.Code)
	}

	c, rec = env.request(http.MethodPost, "/api/v1/feedback", `{"rating":5,"plan_id":"not-a-uuid"}`)
	if err := env.feedback.Create(c); err != nil {
		t.Fatalf("feedback: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for invalid plan id, got %d", rec.Code)
	}
}

// TestHealth проверяет ответ проверки состояния.
func TestHealth(t *testing.T) {
	env := newTestEnv()

	c, rec := env.request(http.MethodGet, "/health", "")
	if err := Health(catalog.Default())(c); err != nil {
		t.Fatalf("health: %v", err)
	}

	var response HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if response.Status != "ok" || response.CatalogItems != 40 {
		t.Fatalf("unexpected health: %+v", response)
	}
}
