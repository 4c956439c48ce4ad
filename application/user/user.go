package user

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/muhammadheryan/student-api/cmd/config"
	"github.com/muhammadheryan/student-api/constant"
	"github.com/muhammadheryan/student-api/model"
	redisrepo "github.com/muhammadheryan/student-api/repository/redis"
	userrepo "github.com/muhammadheryan/student-api/repository/user"
	"github.com/muhammadheryan/student-api/thirdparty/mail"
	"github.com/muhammadheryan/student-api/thirdparty/rabbitmq"
	"github.com/muhammadheryan/student-api/utils/credential"
	"github.com/muhammadheryan/student-api/utils/errors"
	"github.com/muhammadheryan/student-api/utils/logger"
	validatorx "github.com/muhammadheryan/student-api/utils/validator"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

const verifyCooldownPrefix = "verify-email:"

type UserApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (*credential.Claims, error)
	SendVerificationEmail(ctx context.Context, claims *credential.Claims) error
	VerifyEmail(ctx context.Context, token string) (*model.VerifyEmailResponse, error)
}

type UserAppImpl struct {
	config       *config.Config
	userRepo     userrepo.UserRepository
	redisRepo    redisrepo.Repository
	mailer       mail.Mailer
	publisher    rabbitmq.EventPublisher
	sessionCodec *credential.Codec
	emailCodec   *credential.Codec
}

func NewUserApp(config *config.Config, userRepo userrepo.UserRepository, redisRepo redisrepo.Repository, mailer mail.Mailer, publisher rabbitmq.EventPublisher) UserApp {
	return &UserAppImpl{
		config:       config,
		userRepo:     userRepo,
		redisRepo:    redisRepo,
		mailer:       mailer,
		publisher:    publisher,
		sessionCodec: credential.NewCodec(config.Auth.JWTSecret, config.Auth.JWTExpiration),
		emailCodec:   credential.NewCodec(config.Auth.EmailSecret, config.Auth.EmailExpiration),
	}
}

func (s *UserAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	if req == nil || (req.Username == "" && req.Email == "" && req.Password == "") {
		return nil, errors.SetCustomError(constant.ErrEmptyBody)
	}

	req.Normalize()
	if msgs := validatorx.Validate(req); len(msgs) > 0 {
		return nil, errors.SetValidationError(msgs)
	}

	// Pre-check gives a fast 409; the unique indexes settle concurrent registrations.
	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Register] err userRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	existingUser, err = s.userRepo.Get(ctx, &model.UserFilter{Username: req.Username})
	if err != nil {
		logger.Error("[Register] err userRepo.Get username", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	hashedPassword, err := credential.HashPassword(req.Password)
	if err != nil {
		logger.Error("[Register] err credential.HashPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	user, err := s.userRepo.Create(ctx, &model.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashedPassword,
	})
	if err != nil {
		if stderrors.Is(err, userrepo.ErrDuplicateKey) {
			return nil, errors.SetCustomError(constant.ErrCredentialExists)
		}
		logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	token, err := s.issueSession(user)
	if err != nil {
		logger.Error("[Register] err issueSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	res := model.NewUserResponse(user)
	s.publish(ctx, constant.EventUserRegistered, res)
	return &model.AuthResponse{User: res, Token: token}, nil
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.AuthResponse, error) {
	if req == nil || (req.Email == "" && req.Password == "") {
		return nil, errors.SetCustomError(constant.ErrEmptyBody)
	}

	req.Normalize()
	if msgs := validatorx.Validate(req); len(msgs) > 0 {
		return nil, errors.SetValidationError(msgs)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUserNotFound)
	}

	if !credential.ComparePassword(user.Password, req.Password) {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	token, err := s.issueSession(user)
	if err != nil {
		logger.Error("[Login] err issueSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.AuthResponse{User: model.NewUserResponse(user), Token: token}, nil
}

// ValidateToken verifies a session token. Verification tokens are signed with
// another secret and fail here.
func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (*credential.Claims, error) {
	claims, err := s.sessionCodec.Parse(tokenString)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

func (s *UserAppImpl) SendVerificationEmail(ctx context.Context, claims *credential.Claims) error {
	if claims == nil || claims.UserID == "" {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}

	cooldownKey := verifyCooldownPrefix + claims.UserID
	acquired, err := s.redisRepo.SetIfAbsent(ctx, cooldownKey, "1", s.config.Auth.VerifyEmailCooldown)
	if err != nil {
		logger.Warn("[SendVerificationEmail] err redisRepo.SetIfAbsent", zap.String("error", err.Error()))
		acquired = true
	}
	if !acquired {
		return errors.SetCustomError(constant.ErrTooManyRequests)
	}

	token, err := s.emailCodec.Issue(credential.Claims{UserID: claims.UserID})
	if err != nil {
		logger.Error("[SendVerificationEmail] err emailCodec.Issue", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	err = s.mailer.SendVerification(ctx, mail.VerificationEmail{
		To:               claims.Email,
		UserName:         claims.Username,
		VerificationLink: fmt.Sprintf("%s?token=%s", s.config.FrontendURL, token),
	})
	if err != nil {
		logger.Error("[SendVerificationEmail] err mailer.SendVerification", zap.String("error", err.Error()))
		if delErr := s.redisRepo.Delete(ctx, cooldownKey); delErr != nil {
			logger.Warn("[SendVerificationEmail] err redisRepo.Delete", zap.String("error", delErr.Error()))
		}
		return errors.SetCustomError(constant.ErrInternal)
	}

	return nil
}

func (s *UserAppImpl) VerifyEmail(ctx context.Context, token string) (*model.VerifyEmailResponse, error) {
	if token == "" {
		return nil, errors.SetCustomError(constant.ErrMissingToken)
	}

	claims, err := s.emailCodec.Parse(token)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidToken)
	}

	oid, err := primitive.ObjectIDFromHex(claims.UserID)
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidToken)
	}

	user, err := s.userRepo.MarkVerified(ctx, oid)
	if err != nil {
		logger.Error("[VerifyEmail] err userRepo.MarkVerified", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return nil, errors.SetCustomError(constant.ErrUserNotFound)
	}

	res := model.NewUserResponse(user)
	s.publish(ctx, constant.EventUserVerified, res)
	return &model.VerifyEmailResponse{User: res}, nil
}

func (s *UserAppImpl) issueSession(user *model.User) (string, error) {
	return s.sessionCodec.Issue(credential.Claims{
		UserID:   user.ID.Hex(),
		Username: user.Username,
		Email:    user.Email,
	})
}

func (s *UserAppImpl) publish(ctx context.Context, key string, user model.UserResponse) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, key, user); err != nil {
		logger.Error("[publish] err publisher.Publish", zap.String("routing_key", key), zap.String("error", err.Error()))
	}
}
