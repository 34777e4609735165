package echoapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/web3versity/web3versity/core"
	"github.com/web3versity/web3versity/core/hedera"
	"github.com/web3versity/web3versity/core/user"
)

// fakeFunction stands in for the remote serverless function.
func fakeFunction(t *testing.T, res hedera.Result) (*httptest.Server, *map[string]interface{}) {
	t.Helper()
	var gotBody map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(res)
	}))
	t.Cleanup(srv.Close)
	return srv, &gotBody
}

func TestHederaDeployContract(t *testing.T) {
	remote, gotBody := fakeFunction(t, hedera.Result{Success: true, ContractID: "0.0.4242"})
	origURL := core.Conf.Hedera.FunctionURL
	core.Conf.Hedera.FunctionURL = remote.URL
	defer func() { core.Conf.Hedera.FunctionURL = origURL }()

	env := newTestServer(t)
	learner := env.createUser(t, "Grace Lumu", "gracelumu", "grace@test.cd", "Passw0rd!", []string{user.RoleLearner})
	token := env.token(t, learner)

	body := DeployContractRequest{
		Bytecode: "0x6080",
		Gas:      300000,
	}
	body.WalletAddress = "0.0.1001"
	body.WalletSignature = "0xsigned"

	rec := env.request(t, http.MethodPost, "/v1/hedera/contracts/deploy", body, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = env.request(t, http.MethodPost, "/v1/hedera/contracts/deploy", body, token)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res hedera.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Success)
	assert.Equal(t, "0.0.4242", res.ContractID)

	assert.Equal(t, "deployContract", (*gotBody)["action"])
	assert.Equal(t, "0.0.1001", (*gotBody)["walletAddress"])
	assert.Equal(t, "0xsigned", (*gotBody)["walletSignature"])
}

func TestHederaRemoteFailureEnvelope(t *testing.T) {
	remote, _ := fakeFunction(t, hedera.Result{Success: false, Error: "Insufficient balance"})
	origURL := core.Conf.Hedera.FunctionURL
	core.Conf.Hedera.FunctionURL = remote.URL
	defer func() { core.Conf.Hedera.FunctionURL = origURL }()

	env := newTestServer(t)
	learner := env.createUser(t, "Grace Lumu", "gracelumu", "grace@test.cd", "Passw0rd!", []string{user.RoleLearner})

	body := ExecuteContractRequest{
		ContractID: "0.0.4242",
		Function:   "transfer",
		Gas:        100000,
	}
	body.WalletAddress = "0.0.1001"
	body.WalletSignature = "0xsigned"

	// remote business failures still come back as 200 with success=false
	rec := env.request(t, http.MethodPost, "/v1/hedera/contracts/execute", body, env.token(t, learner))
	require.Equal(t, http.StatusOK, rec.Code)

	var res hedera.Result
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.False(t, res.Success)
	assert.Equal(t, "Insufficient balance", res.Error)
}

func TestHederaSubmitMessageValidation(t *testing.T) {
	env := newTestServer(t)
	learner := env.createUser(t, "Grace Lumu", "gracelumu", "grace@test.cd", "Passw0rd!", []string{user.RoleLearner})

	// missing signature
	body := SubmitMessageRequest{TopicID: "0.0.7", Message: "hello"}
	rec := env.request(t, http.MethodPost, "/v1/hedera/topics/message", body, env.token(t, learner))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
