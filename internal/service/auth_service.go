package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	config "github.com/blacklabelhq/scheduler-api/configs"
	"github.com/blacklabelhq/scheduler-api/internal/models"
	"github.com/blacklabelhq/scheduler-api/internal/repository"
	"github.com/blacklabelhq/scheduler-api/internal/transfer"
	"github.com/blacklabelhq/scheduler-api/pkg/utils"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

type AuthService interface {
	SignUp(ctx context.Context, su *transfer.SignUp) (userID, workspaceID string, err error)
	Login(ctx context.Context, email, password string) (userID string, err error)
	LoginCallback(ctx context.Context, code string) (userID string, err error)
}

type authService struct {
	cfg config.Config
	db  *sql.DB
	u   repository.UserRepository
	w   repository.WorkspaceRepository
}

func NewAuthService(cfg config.Config, db *sql.DB, u repository.UserRepository, w repository.WorkspaceRepository) AuthService {
	return &authService{
		cfg: cfg,
		db:  db,
		u:   u,
		w:   w,
	}
}

// SignUp creates the account and its first workspace in one transaction:
// user, workspace (business name or the default), and an owner
// membership. Either everything lands or nothing does.
func (s *authService) SignUp(ctx context.Context, su *transfer.SignUp) (string, string, error) {
	_, isExist, err := s.u.GetByEmail(ctx, su.Email)
	if err != nil {
		return "", "", err
	}
	if isExist {
		err = errors.New("an account with this email already exists")
		slog.Info(err.Error())
		return "", "", err
	}

	hash, err := utils.HashPassword(su.Password)
	if err != nil {
		return "", "", fmt.Errorf("error creating account")
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return "", "", fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		}
	}()

	userID, err := s.u.Create(ctx, tx, &models.User{
		Email:        su.Email,
		PasswordHash: hash,
	})
	if err != nil {
		return "", "", fmt.Errorf("error creating user: %w", err)
	}

	workspaceID, err := s.bootstrapWorkspace(ctx, tx, userID, su.BusinessName)
	if err != nil {
		return "", "", err
	}

	if err = tx.Commit(); err != nil {
		return "", "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return userID, workspaceID, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, isExist, err := s.u.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if !isExist || user.PasswordHash == "" || !utils.CheckPassword(user.PasswordHash, password) {
		err = errors.New("invalid email or password")
		slog.Info(err.Error())
		return "", err
	}

	return user.ID, nil
}

// LoginCallback finishes the Google OAuth flow. First-time users get a
// default workspace bootstrapped, same as signup.
func (s *authService) LoginCallback(ctx context.Context, code string) (string, error) {
	if code == "" {
		err := errors.New("authorization code is empty")
		slog.Info(err.Error())
		return "", err
	}

	oauth2Config := &oauth2.Config{
		ClientID:     s.cfg.GoogleClientID,
		ClientSecret: s.cfg.GoogleClientSecret,
		RedirectURL:  s.cfg.GoogleRedirectURI,
		Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
		Endpoint:     google.Endpoint,
	}

	if oauth2Config.ClientID == "" || oauth2Config.ClientSecret == "" || oauth2Config.RedirectURL == "" {
		err := errors.New("OAuth2 configuration is incomplete")
		slog.Info(err.Error())
		return "", err
	}

	token, err := oauth2Config.Exchange(ctx, code)
	if err != nil {
		slog.Info(err.Error())
		return "", err
	}

	client := oauth2Config.Client(ctx, token)

	userInfo, err := getGoogleUserInfo(client)
	if err != nil {
		return "", err
	}

	user, isExist, err := s.u.GetByEmail(ctx, userInfo.Email)
	if err != nil {
		return "", err
	}

	if isExist {
		if user.GoogleID == "" {
			user.GoogleID = userInfo.ID
			user.Name = userInfo.Name
			user.ProfilePicture = userInfo.Picture
			if err := s.u.Update(ctx, user); err != nil {
				return "", err
			}
		}
		return user.ID, nil
	}

	tx, err := s.db.BeginTx(ctx, &sql.TxOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		} else if err != nil {
			tx.Rollback()
		}
	}()

	userID, err := s.u.Create(ctx, tx, &models.User{
		GoogleID:       userInfo.ID,
		Email:          userInfo.Email,
		Name:           userInfo.Name,
		ProfilePicture: userInfo.Picture,
	})
	if err != nil {
		return "", fmt.Errorf("error creating user: %w", err)
	}

	if _, err = s.bootstrapWorkspace(ctx, tx, userID, ""); err != nil {
		return "", err
	}

	if err = tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit transaction: %w", err)
	}

	return userID, nil
}

func (s *authService) bootstrapWorkspace(ctx context.Context, tx *sql.Tx, userID, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultWorkspaceName
	}

	ws := &models.Workspace{Name: name}
	workspaceID, err := s.w.Create(ctx, tx, ws)
	if err != nil {
		return "", fmt.Errorf("error creating workspace: %w", err)
	}

	member := &models.WorkspaceMember{
		WorkspaceID: workspaceID,
		UserID:      userID,
		Role:        models.MemberRoleOwner,
	}
	if err := s.w.AddMember(ctx, tx, member); err != nil {
		return "", fmt.Errorf("error saving workspace membership: %w", err)
	}

	return workspaceID, nil
}

func getGoogleUserInfo(client *http.Client) (*transfer.GoogleUserInfo, error) {
	userInfoURL := "https://www.googleapis.com/oauth2/v1/userinfo"

	response, err := client.Get(userInfoURL)
	if err != nil {
		slog.Info(err.Error())
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		err = fmt.Errorf("failed to fetch user info: %s", response.Status)
		slog.Info(err.Error())
		return nil, err
	}

	var userInfo transfer.GoogleUserInfo
	if err := json.NewDecoder(response.Body).Decode(&userInfo); err != nil {
		slog.Info(err.Error())
		return nil, err
	}

	return &userInfo, nil
}
