// internal/services/auth_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"

	"github.com/shoplane/pos-backend/internal/config"
	"github.com/shoplane/pos-backend/internal/models"
	"github.com/shoplane/pos-backend/internal/utils"
)

type AuthServiceTestSuite struct {
	suite.Suite
	db      *gorm.DB
	service *AuthService
}

func (suite *AuthServiceTestSuite) SetupTest() {
	suite.db = newTestDB(suite.T())

	cfg := &config.Config{}
	cfg.JWT.SecretKey = "test-secret"
	cfg.JWT.AccessTokenTTL = 24
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	suite.service = NewAuthService(suite.db, cfg)
}

func (suite *AuthServiceTestSuite) register(username string) *models.User {
	user, err := suite.service.Register(&RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "Sup3rSecret!",
		Role:     models.UserRoleCashier,
	})
	suite.Require().NoError(err)
	return user
}

func (suite *AuthServiceTestSuite) TestRegisterAndLogin() {
	suite.register("cashier1")

	resp, err := suite.service.Login(&LoginRequest{
		Username: "cashier1",
		Password: "Sup3rSecret!",
	})

	suite.Require().NoError(err)
	suite.NotEmpty(resp.Token)
	suite.Equal("cashier1", resp.User.Username)

	claims, err := utils.ValidateJWT(resp.Token)
	suite.Require().NoError(err)
	suite.Equal(string(models.UserRoleCashier), claims.Role)
}

func (suite *AuthServiceTestSuite) TestLoginWrongPassword() {
	suite.register("cashier1")

	_, err := suite.service.Login(&LoginRequest{
		Username: "cashier1",
		Password: "wrong-password",
	})

	suite.Require().Error(err)
	suite.Equal("invalid credentials", err.Error())
}

func (suite *AuthServiceTestSuite) TestLoginUnknownUser() {
	_, err := suite.service.Login(&LoginRequest{
		Username: "nobody",
		Password: "whatever",
	})

	suite.Require().Error(err)
	// The same message as a bad password, so callers cannot probe
	// which usernames exist.
	suite.Equal("invalid credentials", err.Error())
}

func (suite *AuthServiceTestSuite) TestLoginSuspendedAccount() {
	user := suite.register("cashier1")
	suite.Require().NoError(suite.db.Model(user).
		Update("status", models.UserStatusSuspended).Error)

	_, err := suite.service.Login(&LoginRequest{
		Username: "cashier1",
		Password: "Sup3rSecret!",
	})

	suite.Error(err)
}

func (suite *AuthServiceTestSuite) TestRegisterDuplicateUsername() {
	suite.register("cashier1")

	_, err := suite.service.Register(&RegisterRequest{
		Username: "cashier1",
		Email:    "other@example.com",
		Password: "Sup3rSecret!",
		Role:     models.UserRoleCashier,
	})

	suite.Error(err)
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceTestSuite))
}
