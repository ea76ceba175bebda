// Package transaction exposes the deposit and withdrawal endpoints nested
// under an account.
package transaction

import (
	"fmt"
	"regexp"

	"github.com/eaglebank/eaglebank/pkg/config"
	"github.com/eaglebank/eaglebank/pkg/currency"
	accountdomain "github.com/eaglebank/eaglebank/pkg/domain/account"
	"github.com/eaglebank/eaglebank/pkg/dto"
	"github.com/eaglebank/eaglebank/pkg/middleware"
	authsvc "github.com/eaglebank/eaglebank/pkg/service/auth"
	ledgersvc "github.com/eaglebank/eaglebank/pkg/service/ledger"
	accountweb "github.com/eaglebank/eaglebank/webapi/account"
	"github.com/eaglebank/eaglebank/webapi/common"
	"github.com/gofiber/fiber/v2"
)

var transactionIDPattern = regexp.MustCompile(`^tan-[A-Za-z0-9]+$`)

// Routes registers the transaction endpoints. All of them require a bearer
// token.
func Routes(app *fiber.App, ledgerSvc *ledgersvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	guard := middleware.JwtProtected(cfg.Jwt)
	app.Post("/v1/accounts/:accountNumber/transactions", guard,
		CreateTransaction(ledgerSvc, authSvc, cfg.Ledger))
	app.Get("/v1/accounts/:accountNumber/transactions", guard,
		ListTransactions(ledgerSvc, authSvc))
	app.Get("/v1/accounts/:accountNumber/transactions/:transactionId", guard,
		GetTransaction(ledgerSvc, authSvc))
}

// CreateTransaction posts a deposit or withdrawal against an account.
// @Summary Create a transaction
// @Description Post a deposit or withdrawal against an account
// @Tags transactions
// @Accept json
// @Produce json
// @Param accountNumber path string true "Account number"
// @Param request body CreateTransactionRequest true "Transaction details"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 422 {object} common.ProblemDetails
// @Router /v1/accounts/{accountNumber}/transactions [post]
// @Security Bearer
func CreateTransaction(ledgerSvc *ledgersvc.Service, authSvc *authsvc.Service, cfg *config.Ledger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		number, err := accountweb.ParamAccountNumber(c)
		if number == "" {
			return err
		}
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}
		input, err := common.BindAndValidate[CreateTransactionRequest](c)
		if input == nil {
			return err
		}
		if input.Amount.IsNegative() {
			return common.ProblemDetailsJSON(c, "Invalid transaction", nil,
				"Amount must not be negative", fiber.StatusBadRequest)
		}
		if input.Amount.GreaterThan(cfg.MaxTransactionAmount) {
			return common.ProblemDetailsJSON(c, "Invalid transaction", nil,
				fmt.Sprintf("Amount must not exceed %s", cfg.MaxTransactionAmount), fiber.StatusBadRequest)
		}
		txn, err := ledgerSvc.CreateTransaction(c.Context(), number, userID, ledgersvc.CreateInput{
			Amount:    input.Amount,
			Currency:  currency.Code(input.Currency),
			Type:      accountdomain.TransactionType(input.Type),
			Reference: input.Reference,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't create transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Transaction created", ToResponse(txn))
	}
}

// ListTransactions returns the transactions on an account the authenticated
// user owns.
// @Summary List transactions
// @Tags transactions
// @Produce json
// @Param accountNumber path string true "Account number"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /v1/accounts/{accountNumber}/transactions [get]
// @Security Bearer
func ListTransactions(ledgerSvc *ledgersvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		number, err := accountweb.ParamAccountNumber(c)
		if number == "" {
			return err
		}
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}
		txns, err := ledgerSvc.ListTransactions(c.Context(), number, userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list transactions", err)
		}
		out := make([]TransactionResponse, 0, len(txns))
		for _, txn := range txns {
			out = append(out, ToResponse(txn))
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transactions found", out)
	}
}

// GetTransaction returns a single transaction on an account the
// authenticated user owns.
// @Summary Get transaction by ID
// @Tags transactions
// @Produce json
// @Param accountNumber path string true "Account number"
// @Param transactionId path string true "Transaction ID"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /v1/accounts/{accountNumber}/transactions/{transactionId} [get]
// @Security Bearer
func GetTransaction(ledgerSvc *ledgersvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		number, err := accountweb.ParamAccountNumber(c)
		if number == "" {
			return err
		}
		transactionID := c.Params("transactionId")
		if !transactionIDPattern.MatchString(transactionID) {
			return common.ProblemDetailsJSON(c, "Invalid transaction ID", nil,
				"Transaction ID must match tan-<alphanumeric>", fiber.StatusBadRequest)
		}
		userID, err := common.CurrentUserID(c, authSvc)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Unauthorized", err, fiber.StatusUnauthorized)
		}
		txn, err := ledgerSvc.GetTransaction(c.Context(), userID, number, transactionID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't fetch transaction", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transaction found", ToResponse(txn))
	}
}

// ToResponse maps a transaction read model to the public payload.
func ToResponse(txn *dto.TransactionRead) TransactionResponse {
	return TransactionResponse{
		ID:               txn.ID,
		Amount:           txn.Amount,
		Currency:         txn.Currency,
		Type:             txn.Type,
		Reference:        txn.Reference,
		UserID:           txn.UserID,
		CreatedTimestamp: txn.CreatedAt,
	}
}
