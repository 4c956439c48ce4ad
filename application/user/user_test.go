package user_test

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	appuser "github.com/muhammadheryan/student-api/application/user"
	"github.com/muhammadheryan/student-api/cmd/config"
	"github.com/muhammadheryan/student-api/constant"
	redismocks "github.com/muhammadheryan/student-api/mocks/repository/redis"
	usermocks "github.com/muhammadheryan/student-api/mocks/repository/user"
	mailmocks "github.com/muhammadheryan/student-api/mocks/thirdparty/mail"
	rabbitmocks "github.com/muhammadheryan/student-api/mocks/thirdparty/rabbitmq"
	"github.com/muhammadheryan/student-api/model"
	userrepo "github.com/muhammadheryan/student-api/repository/user"
	"github.com/muhammadheryan/student-api/thirdparty/mail"
	"github.com/muhammadheryan/student-api/utils/credential"
	cerr "github.com/muhammadheryan/student-api/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	sessionSecret = "session-secret"
	emailSecret   = "email-secret"
)

type fields struct {
	config    *config.Config
	userRepo  *usermocks.UserRepository
	redisRepo *redismocks.RedisRepository
	mailer    *mailmocks.Mailer
	publisher *rabbitmocks.EventPublisher
}

func newFields(t *testing.T) fields {
	return fields{
		config: &config.Config{
			FrontendURL: "http://localhost:3000/verify-email",
			Auth: config.AuthConfig{
				JWTSecret:           sessionSecret,
				JWTExpiration:       time.Hour,
				EmailSecret:         emailSecret,
				EmailExpiration:     time.Hour,
				VerifyEmailCooldown: time.Minute,
			},
		},
		userRepo:  usermocks.NewUserRepository(t),
		redisRepo: redismocks.NewRedisRepository(t),
		mailer:    mailmocks.NewMailer(t),
		publisher: rabbitmocks.NewEventPublisher(t),
	}
}

func (f fields) app() appuser.UserApp {
	return appuser.NewUserApp(f.config, f.userRepo, f.redisRepo, f.mailer, f.publisher)
}

func assertErrType(t *testing.T, err error, want constant.ErrorType) cerr.CustomError {
	t.Helper()
	var ce cerr.CustomError
	require.True(t, errors.As(err, &ce), "error type = %T, want CustomError", err)
	require.Equal(t, constant.ErrorTypeCode[want], ce.ErrorCode(), "unexpected error: %v", err)
	return ce
}

func storedUser(t *testing.T, password string) *model.User {
	t.Helper()
	hashed, err := credential.HashPassword(password)
	require.NoError(t, err)
	return &model.User{
		ID:        primitive.NewObjectID(),
		Username:  "jane",
		Email:     "jane@example.com",
		Password:  hashed,
		CreatedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestUserApp_Register(t *testing.T) {
	tests := []struct {
		name       string
		req        *model.RegisterRequest
		mockCall   func(f fields)
		wantErr    bool
		errCode    constant.ErrorType
		wantDetail []string
	}{
		{
			name: "success: register new user",
			req:  &model.RegisterRequest{Username: " jane ", Email: "Jane@Example.com", Password: "password123"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "jane@example.com"}).Return(nil, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Username: "jane"}).Return(nil, nil).Once()
				f.userRepo.
					On("Create", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
						return u.Username == "jane" &&
							u.Email == "jane@example.com" &&
							u.Password != "password123" &&
							credential.ComparePassword(u.Password, "password123")
					})).
					Return(func(_ context.Context, u *model.User) (*model.User, error) {
						u.ID = primitive.NewObjectID()
						u.CreatedAt = time.Now()
						return u, nil
					}).
					Once()
				f.publisher.On("Publish", mock.Anything, constant.EventUserRegistered, mock.AnythingOfType("model.UserResponse")).Return(nil).Once()
			},
		},
		{
			name:    "error: empty body",
			req:     &model.RegisterRequest{},
			wantErr: true,
			errCode: constant.ErrEmptyBody,
		},
		{
			name:       "error: every violation is reported",
			req:        &model.RegisterRequest{Username: "ab", Email: "nope", Password: "123"},
			wantErr:    true,
			errCode:    constant.ErrValidation,
			wantDetail: []string{"Username should have a minimum length of 3", "Please provide a valid email", "Password should have a minimum length of 6"},
		},
		{
			name:       "error: password longer than bcrypt accepts",
			req:        &model.RegisterRequest{Username: "jane", Email: "jane@example.com", Password: strings.Repeat("a", 80)},
			wantErr:    true,
			errCode:    constant.ErrValidation,
			wantDetail: []string{"Password should have a maximum length of 72"},
		},
		{
			name:       "error: multibyte password over 72 bytes",
			req:        &model.RegisterRequest{Username: "jane", Email: "jane@example.com", Password: strings.Repeat("é", 40)},
			wantErr:    true,
			errCode:    constant.ErrValidation,
			wantDetail: []string{"Password should have a maximum length of 72"},
		},
		{
			name: "error: email already exists",
			req:  &model.RegisterRequest{Username: "jane", Email: "jane@example.com", Password: "password123"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "jane@example.com"}).Return(&model.User{}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: username already exists",
			req:  &model.RegisterRequest{Username: "jane", Email: "jane@example.com", Password: "password123"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "jane@example.com"}).Return(nil, nil).Once()
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Username: "jane"}).Return(&model.User{}, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: concurrent registration loses on unique index",
			req:  &model.RegisterRequest{Username: "jane", Email: "jane@example.com", Password: "password123"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(nil, nil).Twice()
				f.userRepo.On("Create", mock.Anything, mock.Anything).Return(nil, userrepo.ErrDuplicateKey).Once()
			},
			wantErr: true,
			errCode: constant.ErrCredentialExists,
		},
		{
			name: "error: store failure",
			req:  &model.RegisterRequest{Username: "jane", Email: "jane@example.com", Password: "password123"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, mock.Anything).Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().Register(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Register() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				ce := assertErrType(t, err, tt.errCode)
				if tt.wantDetail != nil {
					assert.Equal(t, tt.wantDetail, ce.Details())
				}
				return
			}

			assert.Equal(t, "jane", got.User.Username)
			assert.Equal(t, "jane@example.com", got.User.Email)
			assert.False(t, got.User.IsVerified)

			claims, err := credential.NewCodec(sessionSecret, time.Hour).Parse(got.Token)
			require.NoError(t, err)
			assert.Equal(t, got.User.ID, claims.UserID)
			assert.Equal(t, "jane", claims.Username)

			_, err = credential.NewCodec(emailSecret, time.Hour).Parse(got.Token)
			assert.ErrorIs(t, err, credential.ErrInvalidToken)
		})
	}
}

func TestUserApp_Login(t *testing.T) {
	user := storedUser(t, "password123")

	tests := []struct {
		name     string
		req      *model.LoginRequest
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name: "success",
			req:  &model.LoginRequest{Email: "JANE@example.com ", Password: "password123"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "jane@example.com"}).Return(user, nil).Once()
			},
		},
		{
			name: "error: wrong password is unauthorized, not not-found",
			req:  &model.LoginRequest{Email: "jane@example.com", Password: "wrong-password"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "jane@example.com"}).Return(user, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrInvalidPassword,
		},
		{
			name: "error: unknown email",
			req:  &model.LoginRequest{Email: "ghost@example.com", Password: "password123"},
			mockCall: func(f fields) {
				f.userRepo.On("Get", mock.Anything, &model.UserFilter{Email: "ghost@example.com"}).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrUserNotFound,
		},
		{
			name:    "error: missing password",
			req:     &model.LoginRequest{Email: "jane@example.com"},
			wantErr: true,
			errCode: constant.ErrValidation,
		},
		{
			name:    "error: empty body",
			req:     nil,
			wantErr: true,
			errCode: constant.ErrEmptyBody,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().Login(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Login() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.errCode)
				return
			}

			assert.Equal(t, model.NewUserResponse(user), got.User)
			claims, err := f.app().ValidateToken(context.Background(), got.Token)
			require.NoError(t, err)
			assert.Equal(t, user.ID.Hex(), claims.UserID)
			assert.Equal(t, user.Email, claims.Email)
		})
	}
}

func TestUserApp_ValidateToken_RejectsVerificationToken(t *testing.T) {
	f := newFields(t)
	token, err := credential.NewCodec(emailSecret, time.Hour).Issue(credential.Claims{UserID: primitive.NewObjectID().Hex()})
	require.NoError(t, err)

	_, err = f.app().ValidateToken(context.Background(), token)
	assert.ErrorIs(t, err, credential.ErrInvalidToken)
}

func TestUserApp_SendVerificationEmail(t *testing.T) {
	userID := primitive.NewObjectID().Hex()
	claims := &credential.Claims{UserID: userID, Username: "jane", Email: "jane@example.com"}
	cooldownKey := "verify-email:" + userID

	t.Run("success: link carries an email token for the user", func(t *testing.T) {
		f := newFields(t)
		var sent mail.VerificationEmail
		f.redisRepo.On("SetIfAbsent", mock.Anything, cooldownKey, "1", time.Minute).Return(true, nil).Once()
		f.mailer.
			On("SendVerification", mock.Anything, mock.AnythingOfType("mail.VerificationEmail")).
			Run(func(args mock.Arguments) { sent = args.Get(1).(mail.VerificationEmail) }).
			Return(nil).
			Once()

		require.NoError(t, f.app().SendVerificationEmail(context.Background(), claims))

		assert.Equal(t, "jane@example.com", sent.To)
		assert.Equal(t, "jane", sent.UserName)
		require.True(t, strings.HasPrefix(sent.VerificationLink, "http://localhost:3000/verify-email?token="))

		link, err := url.Parse(sent.VerificationLink)
		require.NoError(t, err)
		parsed, err := credential.NewCodec(emailSecret, time.Hour).Parse(link.Query().Get("token"))
		require.NoError(t, err)
		assert.Equal(t, userID, parsed.UserID)

		_, err = f.app().ValidateToken(context.Background(), link.Query().Get("token"))
		assert.Error(t, err)
	})

	t.Run("error: resend within cooldown", func(t *testing.T) {
		f := newFields(t)
		f.redisRepo.On("SetIfAbsent", mock.Anything, cooldownKey, "1", time.Minute).Return(false, nil).Once()

		assertErrType(t, f.app().SendVerificationEmail(context.Background(), claims), constant.ErrTooManyRequests)
	})

	t.Run("cache failure does not block sending", func(t *testing.T) {
		f := newFields(t)
		f.redisRepo.On("SetIfAbsent", mock.Anything, cooldownKey, "1", time.Minute).Return(false, errors.New("redis down")).Once()
		f.mailer.On("SendVerification", mock.Anything, mock.Anything).Return(nil).Once()

		assert.NoError(t, f.app().SendVerificationEmail(context.Background(), claims))
	})

	t.Run("error: dispatch failure releases the cooldown", func(t *testing.T) {
		f := newFields(t)
		f.redisRepo.On("SetIfAbsent", mock.Anything, cooldownKey, "1", time.Minute).Return(true, nil).Once()
		f.mailer.On("SendVerification", mock.Anything, mock.Anything).Return(errors.New("smtp down")).Once()
		f.redisRepo.On("Delete", mock.Anything, cooldownKey).Return(nil).Once()

		assertErrType(t, f.app().SendVerificationEmail(context.Background(), claims), constant.ErrInternal)
	})

	t.Run("error: no identity", func(t *testing.T) {
		f := newFields(t)
		assertErrType(t, f.app().SendVerificationEmail(context.Background(), nil), constant.ErrUnauthorize)
	})
}

func TestUserApp_VerifyEmail(t *testing.T) {
	user := storedUser(t, "password123")
	emailCodec := credential.NewCodec(emailSecret, time.Hour)

	validToken, err := emailCodec.Issue(credential.Claims{UserID: user.ID.Hex()})
	require.NoError(t, err)

	expiredToken, err := credential.NewCodec(emailSecret, time.Hour).
		WithClock(func() time.Time { return time.Now().Add(-2 * time.Hour) }).
		Issue(credential.Claims{UserID: user.ID.Hex()})
	require.NoError(t, err)

	sessionToken, err := credential.NewCodec(sessionSecret, time.Hour).Issue(credential.Claims{UserID: user.ID.Hex()})
	require.NoError(t, err)

	verified := *user
	verified.IsVerified = true

	tests := []struct {
		name     string
		token    string
		mockCall func(f fields)
		wantErr  bool
		errCode  constant.ErrorType
	}{
		{
			name:  "success",
			token: validToken,
			mockCall: func(f fields) {
				f.userRepo.On("MarkVerified", mock.Anything, user.ID).Return(&verified, nil).Once()
				f.publisher.On("Publish", mock.Anything, constant.EventUserVerified, mock.Anything).Return(nil).Once()
			},
		},
		{
			name:    "error: missing token",
			token:   "",
			wantErr: true,
			errCode: constant.ErrMissingToken,
		},
		{
			name:    "error: expired token leaves user untouched",
			token:   expiredToken,
			wantErr: true,
			errCode: constant.ErrInvalidToken,
		},
		{
			name:    "error: tampered token",
			token:   validToken + "x",
			wantErr: true,
			errCode: constant.ErrInvalidToken,
		},
		{
			name:    "error: session token is not a verification token",
			token:   sessionToken,
			wantErr: true,
			errCode: constant.ErrInvalidToken,
		},
		{
			name:  "error: user no longer exists",
			token: validToken,
			mockCall: func(f fields) {
				f.userRepo.On("MarkVerified", mock.Anything, user.ID).Return(nil, nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrUserNotFound,
		},
		{
			name:  "error: store failure",
			token: validToken,
			mockCall: func(f fields) {
				f.userRepo.On("MarkVerified", mock.Anything, user.ID).Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := f.app().VerifyEmail(context.Background(), tt.token)
			if (err != nil) != tt.wantErr {
				t.Fatalf("VerifyEmail() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrType(t, err, tt.errCode)
				return
			}
			assert.True(t, got.User.IsVerified)
			assert.Equal(t, user.ID.Hex(), got.User.ID)
		})
	}
}
