package commands

import (
	"context"
	"fmt"

	"todo_service/internal/domain/companies"
	"todo_service/internal/domain/users"
	"todo_service/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// AdminCommandHandler encapsulates logic for administering the todo service via CLI.
type AdminCommandHandler struct {
	services *adminServices
	logger   logger.Logger
}

// NewAdminCommandHandler initializes and returns an AdminCommandHandler instance
// with configured logger and application services.
func NewAdminCommandHandler() (*AdminCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	services, err := setupServices(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to setup services: %w", err)
	}

	return &AdminCommandHandler{
		services: services,
		logger:   loggerInstance,
	}, nil
}

// CompanyCreateCmd creates a company record directly in the database
func (commandHandler *AdminCommandHandler) CompanyCreateCmd(cmd *cobra.Command, _ []string) {
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		commandHandler.logger.Error("invalid name flag ", err)
		return
	}
	description, err := cmd.Flags().GetString("description")
	if err != nil {
		commandHandler.logger.Error("invalid description flag ", err)
		return
	}
	mode, err := cmd.Flags().GetString("mode")
	if err != nil {
		commandHandler.logger.Error("invalid mode flag ", err)
		return
	}
	rating, err := cmd.Flags().GetInt("rating")
	if err != nil {
		commandHandler.logger.Error("invalid rating flag ", err)
		return
	}

	company, err := commandHandler.services.companies.Create(context.Background(), &companies.Company{
		Name:        name,
		Description: description,
		Mode:        mode,
		Rating:      rating,
	})
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Created company ", company.Name, " with id ", company.ID)
}

// UserCreateCmd creates a user record directly in the database
func (commandHandler *AdminCommandHandler) UserCreateCmd(cmd *cobra.Command, _ []string) {
	username, err := cmd.Flags().GetString("username")
	if err != nil {
		commandHandler.logger.Error("invalid username flag ", err)
		return
	}
	email, err := cmd.Flags().GetString("email")
	if err != nil {
		commandHandler.logger.Error("invalid email flag ", err)
		return
	}
	password, err := cmd.Flags().GetString("password")
	if err != nil {
		commandHandler.logger.Error("invalid password flag ", err)
		return
	}
	firstName, err := cmd.Flags().GetString("first-name")
	if err != nil {
		commandHandler.logger.Error("invalid first-name flag ", err)
		return
	}
	lastName, err := cmd.Flags().GetString("last-name")
	if err != nil {
		commandHandler.logger.Error("invalid last-name flag ", err)
		return
	}
	companyID, err := cmd.Flags().GetUint("company-id")
	if err != nil {
		commandHandler.logger.Error("invalid company-id flag ", err)
		return
	}
	isAdmin, err := cmd.Flags().GetBool("admin")
	if err != nil {
		commandHandler.logger.Error("invalid admin flag ", err)
		return
	}

	user, err := commandHandler.services.users.Create(context.Background(), &users.User{
		Username:  username,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		IsActive:  true,
		IsAdmin:   isAdmin,
		CompanyID: companyID,
	}, password)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	commandHandler.logger.Info("Created user ", user.Username, " with id ", user.ID)
}

// TokenIssueCmd issues an access token for an existing user without a password check.
// Intended for local development and operational tooling only.
func (commandHandler *AdminCommandHandler) TokenIssueCmd(cmd *cobra.Command, _ []string) {
	username, err := cmd.Flags().GetString("username")
	if err != nil {
		commandHandler.logger.Error("invalid username flag ", err)
		return
	}

	user, err := commandHandler.services.userRepo.GetByUsername(context.Background(), username)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	token, err := commandHandler.services.tokens.Issue(user.Username, commandHandler.services.config.Auth.TokenTTL())
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Println(token)
}

// TokenVerifyCmd verifies an access token and prints the user it resolves to
func (commandHandler *AdminCommandHandler) TokenVerifyCmd(cmd *cobra.Command, _ []string) {
	token, err := cmd.Flags().GetString("token")
	if err != nil {
		commandHandler.logger.Error("invalid token flag ", err)
		return
	}

	user, err := commandHandler.services.auth.ResolveUser(context.Background(), token)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	fmt.Printf("%d\t%s\t%s\n", user.ID, user.Username, user.Email)
}

// TaskListCmd lists the tasks assigned to a user
func (commandHandler *AdminCommandHandler) TaskListCmd(cmd *cobra.Command, _ []string) {
	userID, err := cmd.Flags().GetUint("user-id")
	if err != nil {
		commandHandler.logger.Error("invalid user-id flag ", err)
		return
	}

	records, err := commandHandler.services.tasks.ListByUserID(context.Background(), userID)
	if err != nil {
		commandHandler.logger.Error(err)
		return
	}

	for _, task := range records {
		fmt.Printf("%d\t%s\t%s\tpriority=%d\n", task.ID, task.Status, task.Summary, task.Priority)
	}
}

// InitAdminCommands registers the administrative sub-commands with the root command.
func InitAdminCommands(rootCmd *cobra.Command) error {
	handler, err := NewAdminCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create admin command handler: %w", err)
	}

	companyCreateCmd := &cobra.Command{
		Use:   "company-create",
		Short: "Create a company",
		Run:   handler.CompanyCreateCmd,
	}
	companyCreateCmd.Flags().String("name", "", "Company name")
	companyCreateCmd.Flags().String("description", "", "Company description")
	companyCreateCmd.Flags().String("mode", "public", "Company mode (public or private)")
	companyCreateCmd.Flags().Int("rating", 0, "Company rating (1-5)")
	if err := companyCreateCmd.MarkFlagRequired("name"); err != nil {
		return err
	}
	rootCmd.AddCommand(companyCreateCmd)

	userCreateCmd := &cobra.Command{
		Use:   "user-create",
		Short: "Create a user",
		Run:   handler.UserCreateCmd,
	}
	userCreateCmd.Flags().String("username", "", "Username")
	userCreateCmd.Flags().String("email", "", "Email address")
	userCreateCmd.Flags().String("password", "", "Plaintext password, hashed before storage")
	userCreateCmd.Flags().String("first-name", "", "First name")
	userCreateCmd.Flags().String("last-name", "", "Last name")
	userCreateCmd.Flags().Uint("company-id", 0, "Company id the user belongs to")
	userCreateCmd.Flags().Bool("admin", false, "Grant admin privileges")
	for _, flag := range []string{"username", "email", "password", "first-name", "last-name", "company-id"} {
		if err := userCreateCmd.MarkFlagRequired(flag); err != nil {
			return err
		}
	}
	rootCmd.AddCommand(userCreateCmd)

	tokenIssueCmd := &cobra.Command{
		Use:   "token-issue",
		Short: "Issue an access token for a user",
		Run:   handler.TokenIssueCmd,
	}
	tokenIssueCmd.Flags().String("username", "", "Username to issue the token for")
	if err := tokenIssueCmd.MarkFlagRequired("username"); err != nil {
		return err
	}
	rootCmd.AddCommand(tokenIssueCmd)

	tokenVerifyCmd := &cobra.Command{
		Use:   "token-verify",
		Short: "Verify an access token and print the resolved user",
		Run:   handler.TokenVerifyCmd,
	}
	tokenVerifyCmd.Flags().String("token", "", "Access token to verify")
	if err := tokenVerifyCmd.MarkFlagRequired("token"); err != nil {
		return err
	}
	rootCmd.AddCommand(tokenVerifyCmd)

	taskListCmd := &cobra.Command{
		Use:   "task-list",
		Short: "List the tasks assigned to a user",
		Run:   handler.TaskListCmd,
	}
	taskListCmd.Flags().Uint("user-id", 0, "User id to list tasks for")
	if err := taskListCmd.MarkFlagRequired("user-id"); err != nil {
		return err
	}
	rootCmd.AddCommand(taskListCmd)

	return nil
}
