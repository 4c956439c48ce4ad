package transport

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	fileapp "github.com/muhammadheryan/student-api/application/file"
	studentapp "github.com/muhammadheryan/student-api/application/student"
	userapp "github.com/muhammadheryan/student-api/application/user"
	"github.com/muhammadheryan/student-api/cmd/config"
	"github.com/muhammadheryan/student-api/constant"
	"github.com/muhammadheryan/student-api/model"
	utilsContext "github.com/muhammadheryan/student-api/utils/context"
	"github.com/muhammadheryan/student-api/utils/errors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type RestHandler struct {
	StudentApp studentapp.StudentApp
	UserApp    userapp.UserApp
	FileApp    fileapp.FileApp
	maxUpload  int64
}

func NewTransport(cfg *config.Config, StudentApp studentapp.StudentApp, UserApp userapp.UserApp, FileApp fileapp.FileApp) http.Handler {
	router := mux.NewRouter()
	router.NotFoundHandler = http.HandlerFunc(notFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	rh := &RestHandler{
		StudentApp: StudentApp,
		UserApp:    UserApp,
		FileApp:    FileApp,
		maxUpload:  cfg.Upload.MaxSize,
	}

	// Swagger UI
	router.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	// Stored profile pictures
	router.PathPrefix("/uploads/").Handler(http.StripPrefix("/uploads/", uploadsHandler(cfg.Upload.Dir)))

	students := router.PathPrefix("/api/students").Subrouter()
	students.HandleFunc("", rh.CreateStudent).Methods(http.MethodPost)
	students.HandleFunc("/", rh.CreateStudent).Methods(http.MethodPost)
	students.HandleFunc("", rh.ListStudents).Methods(http.MethodGet)
	students.HandleFunc("/", rh.ListStudents).Methods(http.MethodGet)
	students.HandleFunc("/{id}", rh.GetStudent).Methods(http.MethodGet)
	students.HandleFunc("/{id}", rh.UpdateStudent).Methods(http.MethodPut)
	students.HandleFunc("/{id}", rh.DeleteStudent).Methods(http.MethodDelete)

	users := router.PathPrefix("/api/users").Subrouter()
	users.HandleFunc("/register", rh.Register).Methods(http.MethodPost)
	users.HandleFunc("/login", rh.Login).Methods(http.MethodPost)
	users.Handle("/send-verify-email", AuthMiddleware(UserApp)(http.HandlerFunc(rh.SendVerifyEmail))).Methods(http.MethodPost)
	users.HandleFunc("/verify-email", rh.VerifyEmail).Methods(http.MethodGet)

	// Outer middleware runs for unmatched routes and preflight requests too.
	var handler http.Handler = router
	handler = LoggingMiddleware()(handler)
	handler = CORSMiddleware(cfg.CORS.AllowedOrigins)(handler)
	handler = RecoverMiddleware()(handler)

	return handler
}

// Register handler
// @Summary Register user
// @Description Register a new user and receive a session token
// @Tags Users
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 201 {object} transport.Response{data=model.AuthResponse}
// @Failure 400 {object} transport.Response
// @Failure 409 {object} transport.Response
// @Router /api/users/register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req *model.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Register(ctx, req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusCreated, "User registered successfully", res)
}

// Login handler
// @Summary Login user
// @Description Login with email and password and receive a session token
// @Tags Users
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} transport.Response{data=model.AuthResponse}
// @Failure 401 {object} transport.Response
// @Failure 404 {object} transport.Response
// @Router /api/users/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req *model.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.UserApp.Login(ctx, req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Login successful", res)
}

// SendVerifyEmail handler
// @Summary Send verification email
// @Description Mail a verification link to the authenticated user
// @Tags Users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} transport.Response
// @Failure 401 {object} transport.Response
// @Failure 429 {object} transport.Response
// @Router /api/users/send-verify-email [post]
func (s *RestHandler) SendVerifyEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := utilsContext.GetClaims(ctx)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	if err := s.UserApp.SendVerificationEmail(ctx, claims); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Verification email sent", nil)
}

// VerifyEmail handler
// @Summary Verify email
// @Description Redeem a verification token
// @Tags Users
// @Produce json
// @Param token query string true "Verification token"
// @Success 200 {object} transport.Response{data=model.VerifyEmailResponse}
// @Failure 400 {object} transport.Response
// @Failure 404 {object} transport.Response
// @Router /api/users/verify-email [get]
func (s *RestHandler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.UserApp.VerifyEmail(ctx, r.URL.Query().Get("token"))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, http.StatusOK, "Email verified successfully", res)
}

// decodeJSON decodes the body into dst. An empty body leaves dst nil.
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if stderrors.Is(err, io.EOF) {
			return nil
		}
		return errors.SetCustomError(constant.ErrInvalidRequest)
	}
	return nil
}

func notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, errors.SetCustomError(constant.ErrNotFound))
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, errors.SetCustomError(constant.ErrMethodNotAllowed))
}

// uploadsHandler serves stored files without directory listings.
func uploadsHandler(dir string) http.Handler {
	fs := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			notFound(w, r)
			return
		}
		fs.ServeHTTP(w, r)
	})
}
