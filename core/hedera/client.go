// Package hedera fronts the remote serverless function that performs the
// actual blockchain actions. It is a thin boundary: every action forwards a
// wallet-signed payload and interprets the function's {success, ...} envelope.
// Failures of any kind resolve to a Result with Success=false; callers check
// Result.Success instead of handling transport errors themselves.
package hedera

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pkg/errors"

	"github.com/web3versity/web3versity/core"
)

// Remote action names understood by the serverless function.
const (
	actionDeployContract  = "deployContract"
	actionExecuteContract = "executeContract"
	actionSubmitMessage   = "submitMessage"
)

const (
	apiKeyHeader = "x-api-key"

	// walletRejectedCode is the EIP-1193 user-rejection code reported by
	// wallet providers when the user declines a connection or signature.
	walletRejectedCode = 4001

	rejectedError = "Transaction rejected by user"
	unknownError  = "Unknown error"
)

type (
	// Signer is a connected wallet able to authorize actions.
	Signer interface {
		Address(ctx context.Context) (string, error)
		// SignMessage asks the wallet to sign a human-readable
		// authorization message; a WalletError with code 4001 means
		// the user declined.
		SignMessage(ctx context.Context, msg string) (string, error)
	}

	// WalletError is a coded error surfaced by a wallet provider.
	WalletError struct {
		Code    int
		Message string
	}

	// Result is the uniform outcome of a blockchain action. Exactly one of
	// Success or Error is meaningful; the remaining fields are filled per
	// action by the remote function.
	Result struct {
		Success        bool   `json:"success"`
		Error          string `json:"error,omitempty"`
		ContractID     string `json:"contractId,omitempty"`
		TransactionID  string `json:"transactionId,omitempty"`
		TopicID        string `json:"topicId,omitempty"`
		SequenceNumber uint64 `json:"sequenceNumber,omitempty"`
		Output         string `json:"result,omitempty"`
	}

	DeployParams struct {
		Bytecode string `json:"bytecode"`
		Gas      int64  `json:"gas"`
	}

	ExecuteParams struct {
		ContractID string        `json:"contractId"`
		Function   string        `json:"function"`
		Params     []interface{} `json:"params,omitempty"`
		Gas        int64         `json:"gas"`
	}

	MessageParams struct {
		TopicID string `json:"topicId"`
		Message string `json:"message"`
	}

	Client struct {
		http    *http.Client
		baseURL string
		apiKey  string
		logger  core.Logger
	}
)

// StaticSigner carries an address and signature already produced by the
// learner's browser wallet; used when a signed payload arrives over the API.
type StaticSigner struct {
	Addr      string
	Signature string
}

var _ Signer = StaticSigner{}

func (s StaticSigner) Address(context.Context) (string, error) { return s.Addr, nil }

func (s StaticSigner) SignMessage(context.Context, string) (string, error) {
	return s.Signature, nil
}

func (e WalletError) Error() string {
	return fmt.Sprintf("wallet error %d: %s", e.Code, e.Message)
}

func NewClient(logger core.Logger) *Client {
	return &Client{
		http:    &http.Client{Timeout: core.Conf.Hedera.RequestTimeout},
		baseURL: core.Conf.Hedera.FunctionURL,
		apiKey:  core.Conf.Hedera.APIKey,
		logger:  logger,
	}
}

func (c *Client) DeployContract(ctx context.Context, signer Signer, p DeployParams) Result {
	msg := fmt.Sprintf("Authorize contract deployment (gas limit %d)", p.Gas)
	return c.do(ctx, signer, msg, actionDeployContract, p)
}

func (c *Client) ExecuteContract(ctx context.Context, signer Signer, p ExecuteParams) Result {
	msg := fmt.Sprintf("Authorize call to %s on contract %s", p.Function, p.ContractID)
	return c.do(ctx, signer, msg, actionExecuteContract, p)
}

func (c *Client) SubmitMessage(ctx context.Context, signer Signer, p MessageParams) Result {
	msg := fmt.Sprintf("Authorize message submission to topic %s", p.TopicID)
	return c.do(ctx, signer, msg, actionSubmitMessage, p)
}

func (c *Client) do(ctx context.Context, signer Signer, authMsg, action string, params interface{}) Result {
	addr, err := signer.Address(ctx)
	if err != nil {
		return c.failure(err)
	}
	sig, err := signer.SignMessage(ctx, authMsg)
	if err != nil {
		return c.failure(err)
	}

	// the wire body is the flattened params plus the action name and the
	// signed authorization
	body := make(map[string]interface{})
	raw, err := json.Marshal(params)
	if err != nil {
		return c.failure(errors.Wrap(err, "encoding params"))
	}
	if err = json.Unmarshal(raw, &body); err != nil {
		return c.failure(errors.Wrap(err, "encoding params"))
	}
	body["action"] = action
	body["walletAddress"] = addr
	body["walletSignature"] = sig

	raw, err = json.Marshal(body)
	if err != nil {
		return c.failure(errors.Wrap(err, "encoding request"))
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(raw))
	if err != nil {
		return c.failure(errors.Wrap(err, "building request"))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return c.failure(err)
	}
	defer resp.Body.Close()

	var res Result
	if err = json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return c.failure(errors.Wrap(err, "decoding response"))
	}
	if !res.Success && res.Error == "" {
		res.Error = unknownError
	}
	return res
}

// failure maps an error to the uniform Result shape. User rejections get a
// friendly message, anything unexpected degrades to a generic one.
func (c *Client) failure(err error) Result {
	if werr, ok := errors.Cause(err).(WalletError); ok {
		if werr.Code == walletRejectedCode {
			return Result{Error: rejectedError}
		}
		return Result{Error: werr.Message}
	}
	c.logger.Error("hedera action failed", err)
	return Result{Error: unknownError}
}
