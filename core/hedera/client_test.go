package hedera

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/web3versity/web3versity/core"
)

type signerMock struct {
	addr    string
	addrErr error
	signErr error
	signed  []string
}

func (s *signerMock) Address(context.Context) (string, error) {
	return s.addr, s.addrErr
}

func (s *signerMock) SignMessage(_ context.Context, msg string) (string, error) {
	if s.signErr != nil {
		return "", s.signErr
	}
	s.signed = append(s.signed, msg)
	return "0xsigned", nil
}

func newTestClient(url string) *Client {
	return &Client{
		http:    http.DefaultClient,
		baseURL: url,
		apiKey:  "test-key",
		logger:  core.NewStdLogger(log.New(os.Stderr, "TEST : ", log.LstdFlags)),
	}
}

func TestClientDeployContract(t *testing.T) {
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get(apiKeyHeader))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(Result{Success: true, ContractID: "0.0.4242", TransactionID: "tx-1"})
	}))
	defer srv.Close()

	signer := &signerMock{addr: "0.0.1001"}
	res := newTestClient(srv.URL).DeployContract(context.Background(), signer, DeployParams{Bytecode: "0x60", Gas: 300000})

	assert.True(t, res.Success)
	assert.Equal(t, "0.0.4242", res.ContractID)
	assert.Empty(t, res.Error)

	assert.Equal(t, "deployContract", gotBody["action"])
	assert.Equal(t, "0.0.1001", gotBody["walletAddress"])
	assert.Equal(t, "0xsigned", gotBody["walletSignature"])
	assert.Equal(t, "0x60", gotBody["bytecode"])
	require.Len(t, signer.signed, 1)
	assert.Contains(t, signer.signed[0], "deployment")
}

func TestClientSignatureRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no remote call expected when the signature is rejected")
	}))
	defer srv.Close()

	signer := &signerMock{addr: "0.0.1001", signErr: WalletError{Code: walletRejectedCode, Message: "User denied message signature"}}
	res := newTestClient(srv.URL).ExecuteContract(context.Background(), signer, ExecuteParams{ContractID: "0.0.4242", Function: "transfer"})

	assert.False(t, res.Success)
	assert.Equal(t, "Transaction rejected by user", res.Error)
}

func TestClientConnectionRejected(t *testing.T) {
	signer := &signerMock{addrErr: WalletError{Code: walletRejectedCode, Message: "User rejected the request"}}
	res := newTestClient("http://127.0.0.1:0").SubmitMessage(context.Background(), signer, MessageParams{TopicID: "0.0.7", Message: "hi"})

	assert.False(t, res.Success)
	assert.Equal(t, "Transaction rejected by user", res.Error)
}

func TestClientWalletErrorMessage(t *testing.T) {
	signer := &signerMock{addrErr: WalletError{Code: 4100, Message: "The requested account has not been authorized"}}
	res := newTestClient("http://127.0.0.1:0").SubmitMessage(context.Background(), signer, MessageParams{TopicID: "0.0.7", Message: "hi"})

	assert.False(t, res.Success)
	assert.Equal(t, "The requested account has not been authorized", res.Error)
}

func TestClientRemoteBusinessError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(Result{Success: false, Error: "Insufficient balance"})
	}))
	defer srv.Close()

	signer := &signerMock{addr: "0.0.1001"}
	res := newTestClient(srv.URL).ExecuteContract(context.Background(), signer, ExecuteParams{ContractID: "0.0.4242", Function: "swap"})

	assert.False(t, res.Success)
	assert.Equal(t, "Insufficient balance", res.Error)
}

func TestClientNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // connection refused from here on

	signer := &signerMock{addr: "0.0.1001"}
	res := newTestClient(srv.URL).SubmitMessage(context.Background(), signer, MessageParams{TopicID: "0.0.7", Message: "hi"})

	assert.False(t, res.Success)
	assert.Equal(t, "Unknown error", res.Error)
}

func TestClientMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("upstream timeout"))
	}))
	defer srv.Close()

	signer := &signerMock{addr: "0.0.1001"}
	res := newTestClient(srv.URL).DeployContract(context.Background(), signer, DeployParams{Bytecode: "0x"})

	assert.False(t, res.Success)
	assert.Equal(t, "Unknown error", res.Error)
}

func TestClientEmptyFailureEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false}`))
	}))
	defer srv.Close()

	signer := &signerMock{addr: "0.0.1001"}
	res := newTestClient(srv.URL).DeployContract(context.Background(), signer, DeployParams{Bytecode: "0x"})

	assert.False(t, res.Success)
	assert.Equal(t, "Unknown error", res.Error)
}
