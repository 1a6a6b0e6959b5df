package handler

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"testing"

	"challengehub/internal/delivery/api/response"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChallengeHandler_Lifecycle(t *testing.T) {
	e := newTestEcho(t)
	alice := registerUser(t, e, "alice", "a@x.com", "pw")
	bob := registerUser(t, e, "bob", "b@x.com", "pw")

	rec := doRequest(e, http.MethodPost, "/newChallenges", CreateChallengeRequest{
		UserID:      alice,
		Text:        json.RawMessage(`"Classify digits"`),
		Description: json.RawMessage(`"MNIST"`),
		Dataset:     json.RawMessage(`"mnist.csv"`),
		Picture:     json.RawMessage(`"digits.png"`),
		Result:      json.RawMessage(`"0.98"`),
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decode[CreateChallengeResponse](t, rec)
	assert.Equal(t, alice, created.UserID)
	assert.NotEmpty(t, created.ChallengeID)

	rec = doRequest(e, http.MethodPost, "/newChallenges", CreateChallengeRequest{UserID: bob})
	require.Equal(t, http.StatusOK, rec.Code, "empty content fields are accepted")

	rec = doRequest(e, http.MethodGet, "/challenges/"+created.ChallengeID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"challengeId": "`+created.ChallengeID+`",
		"userId": "`+alice+`",
		"text": "Classify digits",
		"description": "MNIST",
		"dataset": "mnist.csv",
		"picture": "digits.png",
		"result": "0.98"
	}`, rec.Body.String())

	rec = doRequest(e, http.MethodGet, "/my-challenges?userId="+alice, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	mine := decode[ChallengeListResponse](t, rec)
	require.Len(t, mine.Challenges, 1)
	assert.Equal(t, created.ChallengeID, mine.Challenges[0].ChallengeID)

	rec = doRequest(e, http.MethodGet, "/all-challenges", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[ChallengeListResponse](t, rec).Challenges, 2)

	rec = doRequest(e, http.MethodDelete, "/deleteChallenge/"+created.ChallengeID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, created.ChallengeID, decode[DeleteChallengeResponse](t, rec).ChallengeID)

	rec = doRequest(e, http.MethodGet, "/challenges/"+created.ChallengeID, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "CHALLENGE_NOT_FOUND", decode[response.ErrorResponse](t, rec).Code)
}

func TestChallengeHandler_Create_UnknownUser(t *testing.T) {
	e := newTestEcho(t)

	rec := doRequest(e, http.MethodPost, "/newChallenges", CreateChallengeRequest{UserID: "never-registered", Text: json.RawMessage(`"t"`)})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode[response.ErrorResponse](t, rec)
	assert.Equal(t, "INVALID_USER_ID", body.Code)
	assert.Equal(t, "invalid user id", body.Message)
}

func TestChallengeHandler_Delete_MissingAnswers400(t *testing.T) {
	e := newTestEcho(t)

	rec := doRequest(e, http.MethodDelete, "/deleteChallenge/does-not-exist", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "CHALLENGE_NOT_FOUND", decode[response.ErrorResponse](t, rec).Code)
}

func TestChallengeHandler_Lists_EmptyIsArray(t *testing.T) {
	e := newTestEcho(t)

	for _, path := range []string{"/all-challenges", "/my-challenges?userId=nobody", "/my-challenges"} {
		rec := doRequest(e, http.MethodGet, path, nil)

		require.Equal(t, http.StatusOK, rec.Code, path)
		assert.JSONEq(t, `{"challenges":[]}`, rec.Body.String(), path)
	}
}

func TestHealthCheck(t *testing.T) {
	e := newTestEcho(t)

	rec := doRequest(e, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestChallengeHandler_Create_AnyJSONContent(t *testing.T) {
	e := newTestEcho(t)
	alice := registerUser(t, e, "alice", "a@x.com", "pw")

	rec := doRequest(e, http.MethodPost, "/newChallenges",
		`{"userId":"`+alice+`","text":"Predict","description":null,"result":0.98,"dataset":[1,2],"picture":{"w":28,"h":28}}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	id := decode[CreateChallengeResponse](t, rec).ChallengeID

	rec = doRequest(e, http.MethodGet, "/challenges/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"challengeId": "`+id+`",
		"userId": "`+alice+`",
		"text": "Predict",
		"result": 0.98,
		"dataset": [1,2],
		"picture": {"w":28,"h":28}
	}`, rec.Body.String())

	rec = doRequest(e, http.MethodGet, "/all-challenges", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	all := decode[ChallengeListResponse](t, rec)
	require.Len(t, all.Challenges, 1)
	assert.JSONEq(t, `[1,2]`, string(all.Challenges[0].Dataset))
}

func TestChallengeHandler_Create_MalformedBody(t *testing.T) {
	var logs bytes.Buffer
	e := newTestEchoWithLogger(t, slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))

	rec := doRequest(e, http.MethodPost, "/newChallenges", `{"userId":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_INPUT", decode[response.ErrorResponse](t, rec).Code)
	assert.Contains(t, logs.String(), "Rejected challenge body")
}

func TestChallengeHandler_PathIgnoresBody(t *testing.T) {
	e := newTestEcho(t)
	alice := registerUser(t, e, "alice", "a@x.com", "pw")
	bob := registerUser(t, e, "bob", "b@x.com", "pw")

	create := func(owner string) string {
		rec := doRequest(e, http.MethodPost, "/newChallenges", CreateChallengeRequest{UserID: owner})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		return decode[CreateChallengeResponse](t, rec).ChallengeID
	}
	victim := create(alice)
	target := create(bob)

	for _, body := range []string{
		`{"ChallengeID":"` + victim + `"}`,
		`{"challengeId":"` + victim + `"}`,
	} {
		rec := doRequest(e, http.MethodGet, "/challenges/"+target, body)
		require.Equal(t, http.StatusOK, rec.Code, body)
		assert.Equal(t, target, decode[ChallengeResponse](t, rec).ChallengeID, body)
	}

	rec := doRequest(e, http.MethodDelete, "/deleteChallenge/does-not-exist", `{"ChallengeID":"`+victim+`"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "CHALLENGE_NOT_FOUND", decode[response.ErrorResponse](t, rec).Code)

	rec = doRequest(e, http.MethodDelete, "/deleteChallenge/"+target, `{"ChallengeID":"`+victim+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, target, decode[DeleteChallengeResponse](t, rec).ChallengeID)

	rec = doRequest(e, http.MethodGet, "/challenges/"+victim, nil)
	assert.Equal(t, http.StatusOK, rec.Code, "challenge named only in the body survives")
}

func TestChallengeHandler_ListMine_QueryIgnoresBody(t *testing.T) {
	e := newTestEcho(t)
	alice := registerUser(t, e, "alice", "a@x.com", "pw")

	rec := doRequest(e, http.MethodPost, "/newChallenges", CreateChallengeRequest{UserID: alice})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(e, http.MethodGet, "/my-challenges?userId=nobody", `{"userId":"`+alice+`","UserID":"`+alice+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"challenges":[]}`, rec.Body.String())

	rec = doRequest(e, http.MethodGet, "/my-challenges", `{"userId":"`+alice+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"challenges":[]}`, rec.Body.String())

	rec = doRequest(e, http.MethodGet, "/my-challenges?userId="+alice, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[ChallengeListResponse](t, rec).Challenges, 1)
}
