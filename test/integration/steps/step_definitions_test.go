package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/hotel-ledger/backend/internal/application/usecase/auth"
	"github.com/hotel-ledger/backend/internal/application/usecase/booking"
	"github.com/hotel-ledger/backend/internal/application/usecase/dashboard"
	"github.com/hotel-ledger/backend/internal/application/usecase/expense"
	"github.com/hotel-ledger/backend/internal/application/usecase/hotel"
	"github.com/hotel-ledger/backend/internal/application/usecase/income"
	"github.com/hotel-ledger/backend/internal/application/usecase/reconciliation"
	"github.com/hotel-ledger/backend/internal/application/usecase/report"
	"github.com/hotel-ledger/backend/internal/application/usecase/simplebooking"
	"github.com/hotel-ledger/backend/internal/domain/entity"
	"github.com/hotel-ledger/backend/internal/domain/valueobject"
	"github.com/hotel-ledger/backend/internal/infra/cache"
	"github.com/hotel-ledger/backend/internal/infra/server/router"
	"github.com/hotel-ledger/backend/internal/integration/adapters"
	"github.com/hotel-ledger/backend/internal/integration/email"
	"github.com/hotel-ledger/backend/internal/integration/entrypoint/controller"
	"github.com/hotel-ledger/backend/internal/integration/entrypoint/middleware"
	"github.com/hotel-ledger/backend/internal/integration/persistence"
	"github.com/hotel-ledger/backend/internal/integration/persistence/model"
	"github.com/hotel-ledger/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

var tags string

func init() {
	flag.StringVar(&tags, "scenarios", "", "tags to run")
}

func TestFeatures(t *testing.T) {
	flag.Parse()

	suite := godog.TestSuite{
		ScenarioInitializer: func(s *godog.ScenarioContext) {
			InitializeScenario(s)
		},
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"../features"},
			Tags:     tags,
			Strict:   true,
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}

type testContext struct {
	uri               string
	headers           map[string]string
	client            *http.Client
	response          *response
	db                *mock.Db
	serverPort        int
	accessToken       string
	refreshToken      string
	currentOperatorID uuid.UUID
	currentHotelID    uuid.UUID
	lastEntityID      uuid.UUID
}

type response struct {
	status int
	body   any
	err    error
}

var serverInit sync.Once
var testDB *mock.Db
var testServerPort int
var portInit sync.Once

func initializePort() {
	portInit.Do(func() {
		testServerPort = findAvailablePort()
		_ = os.Setenv("SERVER_PORT", strconv.Itoa(testServerPort))
		_ = os.Setenv("ENV", "test")
	})
}

func InitializeScenario(ctx *godog.ScenarioContext) {
	initializePort()

	test := &testContext{
		uri:        fmt.Sprintf("http://localhost:%d", testServerPort),
		client:     &http.Client{Timeout: 10 * time.Second},
		serverPort: testServerPort,
		db: mock.NewDb("hotel_ledger", map[string]any{
			"operators":       &model.OperatorModel{},
			"refresh_tokens":  &model.RefreshTokenModel{},
			"hotels":          &model.HotelModel{},
			"bookings":        &model.BookingModel{},
			"extra_incomes":   &model.ExtraIncomeModel{},
			"daily_expenses":  &model.DailyExpenseModel{},
			"monthly_reports": &model.MonthlyReportModel{},
			"simple_bookings": &model.SimpleBookingModel{},
			"email_queue":     &model.EmailQueueModel{},
		}),
	}

	testDB = test.db

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		test.before()
		return ctx, nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		return nil, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)

	// Operator setup steps
	ctx.Given(`^an operator exists with email "([^"]*)"$`, test.anOperatorExistsWithEmail)
	ctx.Given(`^an operator exists with email "([^"]*)" and password "([^"]*)"$`, test.anOperatorExistsWithEmailAndPassword)
	ctx.Given(`^the operator has a hotel named "([^"]*)" with code "([^"]*)" and QR rate (\d+)$`, test.theOperatorHasAHotel)
	ctx.Given(`^the operator is logged in with valid tokens$`, test.theOperatorIsLoggedInWithValidTokens)

	// Booking setup steps
	ctx.Given(`^a booking exists with reference "([^"]*)" mode "([^"]*)" payment "([^"]*)" amount "([^"]*)" on "([^"]*)"$`, test.aBookingExists)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)

	// Database assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, test.theDbShouldContainObjectsInWithTheValues)
}

func findAvailablePort() int {
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		panic(err)
	}
	defer listener.Close()
	return listener.Addr().(*net.TCPAddr).Port
}

func (t *testContext) before() {
	t.headers = make(map[string]string)
	t.accessToken = ""
	t.refreshToken = ""
	t.currentOperatorID = uuid.Nil
	t.currentHotelID = uuid.Nil
	t.lastEntityID = uuid.Nil

	if t.db != nil {
		_ = t.db.ClearDB()
	}
	_ = mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) startServer() {
	serverInit.Do(func() {
		go func() {
			gin.SetMode(gin.TestMode)

			// Create repositories
			operatorRepo := persistence.NewOperatorRepository(testDB.DbConn)
			tokenRepo := persistence.NewTokenRepository(testDB.DbConn)
			hotelRepo := persistence.NewHotelRepository(testDB.DbConn)
			bookingRepo := persistence.NewBookingRepository(testDB.DbConn)
			incomeRepo := persistence.NewIncomeRepository(testDB.DbConn)
			expenseRepo := persistence.NewExpenseRepository(testDB.DbConn)
			reportRepo := persistence.NewReportRepository(testDB.DbConn)
			simpleBookingRepo := persistence.NewSimpleBookingRepository(testDB.DbConn)
			emailQueueRepo := persistence.NewEmailQueueRepository(testDB.DbConn)

			// Create adapters/services
			passwordService := adapters.NewPasswordService()
			tokenService := adapters.NewTokenService(testJWTSecret, tokenRepo)
			expenseSuggester := adapters.NewGeminiService("")
			emailService := email.NewService(emailQueueRepo, "http://localhost:5173")
			dashboardCache := cache.NewDashboardCache(mock.NewRedis())

			// Create auth use cases
			registerUseCase := auth.NewRegisterOperatorUseCase(operatorRepo, hotelRepo, passwordService, tokenService, emailService)
			loginUseCase := auth.NewLoginOperatorUseCase(operatorRepo, hotelRepo, passwordService, tokenService)
			refreshTokenUseCase := auth.NewRefreshTokenUseCase(tokenService)
			logoutUseCase := auth.NewLogoutOperatorUseCase(tokenService)

			// Create hotel use cases
			getHotelUseCase := hotel.NewGetHotelUseCase(hotelRepo)
			updateHotelUseCase := hotel.NewUpdateHotelUseCase(hotelRepo)

			// Create booking use cases
			listBookingsUseCase := booking.NewListBookingsUseCase(bookingRepo, hotelRepo)
			createBookingUseCase := booking.NewCreateBookingUseCase(bookingRepo, hotelRepo, dashboardCache)
			updateBookingUseCase := booking.NewUpdateBookingUseCase(bookingRepo, hotelRepo, dashboardCache)
			deleteBookingUseCase := booking.NewDeleteBookingUseCase(bookingRepo, incomeRepo, dashboardCache)

			// Create extra income use cases
			listIncomeUseCase := income.NewListIncomeUseCase(incomeRepo)
			createIncomeUseCase := income.NewCreateIncomeUseCase(incomeRepo, bookingRepo, dashboardCache)
			updateIncomeUseCase := income.NewUpdateIncomeUseCase(incomeRepo, bookingRepo, dashboardCache)
			deleteIncomeUseCase := income.NewDeleteIncomeUseCase(incomeRepo, bookingRepo, dashboardCache)

			// Create expense use cases
			listExpensesUseCase := expense.NewListExpensesUseCase(expenseRepo)
			createExpenseUseCase := expense.NewCreateExpenseUseCase(expenseRepo, dashboardCache)
			updateExpenseUseCase := expense.NewUpdateExpenseUseCase(expenseRepo, dashboardCache)
			deleteExpenseUseCase := expense.NewDeleteExpenseUseCase(expenseRepo, dashboardCache)
			suggestExpenseTypeUseCase := expense.NewSuggestExpenseTypeUseCase(expenseSuggester)

			// Create dashboard and reconciliation use cases
			getOverviewUseCase := dashboard.NewGetOverviewUseCase(hotelRepo, bookingRepo, incomeRepo, expenseRepo, reportRepo, dashboardCache)
			getReconciliationUseCase := reconciliation.NewGetReconciliationUseCase(hotelRepo, bookingRepo)

			// Create report use cases
			listReportsUseCase := report.NewListReportsUseCase(reportRepo)
			generateReportUseCase := report.NewGenerateReportUseCase(hotelRepo, operatorRepo, bookingRepo, incomeRepo, expenseRepo, reportRepo, emailService)

			// Create simple booking use cases
			listSimpleBookingsUseCase := simplebooking.NewListSimpleBookingsUseCase(simpleBookingRepo)
			createSimpleBookingUseCase := simplebooking.NewCreateSimpleBookingUseCase(simpleBookingRepo)
			updateSimpleBookingUseCase := simplebooking.NewUpdateSimpleBookingUseCase(simpleBookingRepo)
			deleteSimpleBookingUseCase := simplebooking.NewDeleteSimpleBookingUseCase(simpleBookingRepo)

			// Create controllers
			healthController := controller.NewHealthController(func() bool {
				return testDB != nil && testDB.DbConn != nil
			}, nil)

			authController := controller.NewAuthController(
				registerUseCase,
				loginUseCase,
				refreshTokenUseCase,
				logoutUseCase,
			)

			hotelController := controller.NewHotelController(getHotelUseCase, updateHotelUseCase)

			bookingController := controller.NewBookingController(
				listBookingsUseCase,
				createBookingUseCase,
				updateBookingUseCase,
				deleteBookingUseCase,
			)

			incomeController := controller.NewIncomeController(
				listIncomeUseCase,
				createIncomeUseCase,
				updateIncomeUseCase,
				deleteIncomeUseCase,
			)

			expenseController := controller.NewExpenseController(
				listExpensesUseCase,
				createExpenseUseCase,
				updateExpenseUseCase,
				deleteExpenseUseCase,
				suggestExpenseTypeUseCase,
			)

			dashboardController := controller.NewDashboardController(getOverviewUseCase)
			reconciliationController := controller.NewReconciliationController(getReconciliationUseCase)
			reportController := controller.NewReportController(listReportsUseCase, generateReportUseCase)
			simpleBookingController := controller.NewSimpleBookingController(
				listSimpleBookingsUseCase,
				createSimpleBookingUseCase,
				updateSimpleBookingUseCase,
				deleteSimpleBookingUseCase,
			)

			// Create middleware
			loginRateLimiter := middleware.NewRateLimiter()
			authMiddleware := middleware.NewAuthMiddleware(tokenService, operatorRepo, hotelRepo)

			r := router.NewRouter(
				healthController,
				authController,
				hotelController,
				bookingController,
				incomeController,
				expenseController,
				dashboardController,
				reconciliationController,
				reportController,
				simpleBookingController,
				loginRateLimiter,
				authMiddleware,
				nil,
			)
			engine := r.Setup("test")

			addr := fmt.Sprintf(":%d", testServerPort)
			server := &http.Server{
				Addr:    addr,
				Handler: engine,
			}

			_ = server.ListenAndServe()
		}()
	})

	// Wait for server to be ready
	for i := 0; i < 50; i++ {
		resp, err := http.Get(t.uri + "/health")
		if err == nil && resp.StatusCode == http.StatusOK {
			resp.Body.Close()
			return
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func (t *testContext) theAPIServerIsRunning() error {
	t.startServer()
	return nil
}

func (t *testContext) anOperatorExistsWithEmail(email string) error {
	return t.createOperator(email, "SecurePass123!", "Test Operator")
}

func (t *testContext) anOperatorExistsWithEmailAndPassword(email, password string) error {
	return t.createOperator(email, password, "Test Operator")
}

func (t *testContext) createOperator(email, password, name string) error {
	operatorID := uuid.New()
	t.currentOperatorID = operatorID

	operator := &model.OperatorModel{
		ID:           operatorID,
		Email:        email,
		Name:         name,
		PasswordHash: hashPassword(password),
		IsAdmin:      false,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	result := t.db.DbConn.Create(operator)
	return result.Error
}

func (t *testContext) theOperatorHasAHotel(name, code string, qrRate int) error {
	hotelID := uuid.New()
	t.currentHotelID = hotelID

	now := time.Now().UTC()
	hotelModel := &model.HotelModel{
		ID:         hotelID,
		OperatorID: t.currentOperatorID,
		Name:       name,
		Code:       code,
		QRRate:     int64(qrRate),
		IsActive:   true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	result := t.db.DbConn.Create(hotelModel)
	return result.Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

func (t *testContext) theOperatorIsLoggedInWithValidTokens() error {
	now := time.Now().UTC()

	accessClaims := jwt.MapClaims{
		"operator_id": t.currentOperatorID.String(),
		"email":       "test@example.com",
		"token_type":  "access",
		"exp":         jwt.NewNumericDate(now.Add(15 * time.Minute)),
		"iat":         jwt.NewNumericDate(now),
		"nbf":         jwt.NewNumericDate(now),
		"iss":         "hotel-ledger",
		"sub":         t.currentOperatorID.String(),
	}
	accessToken := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims)
	accessTokenString, err := accessToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate access token: %w", err)
	}
	t.accessToken = accessTokenString

	refreshClaims := jwt.MapClaims{
		"operator_id": t.currentOperatorID.String(),
		"email":       "test@example.com",
		"token_type":  "refresh",
		"exp":         jwt.NewNumericDate(now.Add(7 * 24 * time.Hour)),
		"iat":         jwt.NewNumericDate(now),
		"nbf":         jwt.NewNumericDate(now),
		"iss":         "hotel-ledger",
		"sub":         t.currentOperatorID.String(),
	}
	refreshToken := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims)
	refreshTokenString, err := refreshToken.SignedString([]byte(testJWTSecret))
	if err != nil {
		return fmt.Errorf("failed to generate refresh token: %w", err)
	}
	t.refreshToken = refreshTokenString

	refreshTokenModel := &model.RefreshTokenModel{
		ID:          uuid.New(),
		Token:       t.refreshToken,
		OperatorID:  t.currentOperatorID,
		Invalidated: false,
		ExpiresAt:   now.Add(7 * 24 * time.Hour),
		CreatedAt:   now,
	}

	result := t.db.DbConn.Create(refreshTokenModel)
	return result.Error
}

func (t *testContext) aBookingExists(reference, mode, paymentMode, amount, date string) error {
	bookingDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return fmt.Errorf("invalid booking date %q: %w", date, err)
	}

	parsedAmount, err := decimal.NewFromString(amount)
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", amount, err)
	}

	// Mirror the write-boundary derivation so seeded rows reconcile the same
	// way API-created bookings do.
	var hotelModel model.HotelModel
	if err := t.db.DbConn.First(&hotelModel, "id = ?", t.currentHotelID).Error; err != nil {
		return fmt.Errorf("hotel not seeded: %w", err)
	}
	qrReturned := valueobject.AutoQRReturn(hotelModel.QRRate, &entity.Booking{
		Mode:        entity.BookingMode(mode),
		PaymentMode: entity.PaymentMode(paymentMode),
		RoomCount:   1,
		Amount:      parsedAmount,
	})

	bookingID := uuid.New()
	t.lastEntityID = bookingID

	now := time.Now().UTC()
	hotelID := t.currentHotelID
	bookingModel := &model.BookingModel{
		ID:               bookingID,
		HotelID:          &hotelID,
		Reference:        reference,
		GuestName:        "Seed Guest",
		BookingDate:      bookingDate,
		Mode:             mode,
		PaymentMode:      paymentMode,
		RoomCount:        1,
		Amount:           parsedAmount,
		QRReturned:       qrReturned,
		ExcludedFromQR:   false,
		ExtraIncomeTotal: decimal.Zero,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	result := t.db.DbConn.Create(bookingModel)
	return result.Error
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = ""
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	path = t.replacePlaceholders(path)
	return t.executeRequest(method, path, nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	path = t.replacePlaceholders(path)

	var payload []byte
	if body != nil && body.Content != "" {
		content := t.replacePlaceholders(body.Content)
		payload = []byte(content)
	}
	return t.executeRequest(method, path, payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{refresh_token}}", t.refreshToken)
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{hotel_id}}", t.currentHotelID.String())
	content = strings.ReplaceAll(content, "{{entity_id}}", t.lastEntityID.String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	var req *http.Request
	var err error

	url := t.uri + path

	if payload != nil {
		req, err = http.NewRequest(method, url, bytes.NewReader(payload))
	} else {
		req, err = http.NewRequest(method, url, nil)
	}
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}

	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{
		status: resp.StatusCode,
	}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody

		// Capture created entity IDs for follow-up requests
		if idStr, ok := responseBody["id"].(string); ok {
			if id, err := uuid.Parse(idStr); err == nil {
				t.lastEntityID = id
			}
		}
	}

	return nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if _, ok := t.response.body.(map[string]any); !ok {
		return fmt.Errorf("response is not JSON: %v", t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldContain(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	if t.response == nil {
		return errors.New("no response received")
	}

	body, ok := t.response.body.(map[string]any)
	if !ok {
		return fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}

	if entity, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(entity).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func getFieldValue(object any, dotSeparatedField string) any {
	if object == nil {
		return nil
	}

	var objectMap map[string]any
	switch v := object.(type) {
	case map[string]any:
		objectMap = v
	default:
		objectJSON, _ := json.Marshal(object)
		if err := json.Unmarshal(objectJSON, &objectMap); err != nil {
			return nil
		}
	}

	fields := strings.Split(dotSeparatedField, ".")
	var field any = objectMap

	for _, currentField := range fields {
		if field == nil {
			return nil
		}

		if i, err := strconv.Atoi(currentField); err == nil {
			if arr, ok := field.([]any); ok && i < len(arr) {
				field = arr[i]
			} else {
				return nil
			}
		} else {
			if m, ok := field.(map[string]any); ok {
				field = m[currentField]
			} else {
				return nil
			}
		}
	}

	return field
}
