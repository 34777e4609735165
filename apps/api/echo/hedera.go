package echoapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/web3versity/web3versity/core"
	"github.com/web3versity/web3versity/core/hedera"
)

type hederaApi struct {
	client *hedera.Client
}

// registerHederaAPI mounts the blockchain-action passthrough. The browser
// wallet signs the authorization message client-side; the API forwards the
// presigned payload. Responses are always 200 with a {success, ...} envelope;
// callers branch on success, not on status codes.
func registerHederaAPI(g *echo.Group, jwt echo.MiddlewareFunc, client *hedera.Client) {
	api := hederaApi{client: client}

	hg := g.Group("/hedera", jwt)
	hg.POST("/contracts/deploy", api.deployContract)
	hg.POST("/contracts/execute", api.executeContract)
	hg.POST("/topics/message", api.submitMessage)
}

// Handlers

func (api *hederaApi) deployContract(ctx echo.Context) error {
	var data DeployContractRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to DeployContractRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	res := api.client.DeployContract(ctx.Request().Context(), data.signer(), hedera.DeployParams{
		Bytecode: data.Bytecode,
		Gas:      data.Gas,
	})
	return ctx.JSON(http.StatusOK, res)
}

func (api *hederaApi) executeContract(ctx echo.Context) error {
	var data ExecuteContractRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to ExecuteContractRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	res := api.client.ExecuteContract(ctx.Request().Context(), data.signer(), hedera.ExecuteParams{
		ContractID: data.ContractID,
		Function:   data.Function,
		Params:     data.Params,
		Gas:        data.Gas,
	})
	return ctx.JSON(http.StatusOK, res)
}

func (api *hederaApi) submitMessage(ctx echo.Context) error {
	var data SubmitMessageRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to SubmitMessageRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}

	res := api.client.SubmitMessage(ctx.Request().Context(), data.signer(), hedera.MessageParams{
		TopicID: data.TopicID,
		Message: data.Message,
	})
	return ctx.JSON(http.StatusOK, res)
}

type (
	signedRequest struct {
		WalletAddress   string `json:"wallet_address" validate:"required"`
		WalletSignature string `json:"wallet_signature" validate:"required"`
	}

	DeployContractRequest struct {
		signedRequest
		Bytecode string `json:"bytecode" validate:"required"`
		Gas      int64  `json:"gas" validate:"min=0"`
	}

	ExecuteContractRequest struct {
		signedRequest
		ContractID string        `json:"contract_id" validate:"required"`
		Function   string        `json:"function" validate:"required"`
		Params     []interface{} `json:"params"`
		Gas        int64         `json:"gas" validate:"min=0"`
	}

	SubmitMessageRequest struct {
		signedRequest
		TopicID string `json:"topic_id" validate:"required"`
		Message string `json:"message" validate:"required"`
	}
)

func (sr signedRequest) signer() hedera.Signer {
	return hedera.StaticSigner{Addr: sr.WalletAddress, Signature: sr.WalletSignature}
}

func (dr *DeployContractRequest) Validate() error  { return core.Validate.Struct(dr) }
func (er *ExecuteContractRequest) Validate() error { return core.Validate.Struct(er) }
func (mr *SubmitMessageRequest) Validate() error   { return core.Validate.Struct(mr) }
