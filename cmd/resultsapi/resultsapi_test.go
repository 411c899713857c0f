package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"github.com/w0lphi/SE2Einzelprojekt/internal/store"
)

type ResultsAPITestSuite struct {
	suite.Suite

	server *httptest.Server
}

func TestResultsAPITestSuite(t *testing.T) {
	suite.Run(t, new(ResultsAPITestSuite))
}

func (ts *ResultsAPITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	resultStore = store.New()
	ts.server = httptest.NewServer(setup().Handler)
}

func (ts *ResultsAPITestSuite) TearDownTest() {
	ts.server.Close()
}

func (ts *ResultsAPITestSuite) postResult(player, game string, score int) gameResultResponse {
	body, err := json.Marshal(gameResultRequest{Player: player, Game: game, Score: score})
	ts.Require().NoError(err)

	res, err := http.Post(ts.server.URL+"/results", "application/json", bytes.NewReader(body))
	ts.Require().NoError(err)
	defer res.Body.Close()
	ts.Require().Equal(http.StatusCreated, res.StatusCode)

	created := gameResultResponse{}
	ts.Require().NoError(json.NewDecoder(res.Body).Decode(&created))

	return created
}

func (ts *ResultsAPITestSuite) TestCreateAndGetResult() {
	created := ts.postResult("jane", "asteroids", 100)
	ts.NotZero(created.ID)
	ts.False(created.PlayedAt.IsZero())

	res, err := http.Get(fmt.Sprintf("%s/results/%d", ts.server.URL, created.ID))
	ts.Require().NoError(err)
	defer res.Body.Close()
	ts.Equal(http.StatusOK, res.StatusCode)

	got := gameResultResponse{}
	ts.Require().NoError(json.NewDecoder(res.Body).Decode(&got))
	ts.Equal("jane", got.Player)
	ts.Equal(100, got.Score)
}

func (ts *ResultsAPITestSuite) TestCreateResult_MissingFields() {
	res, err := http.Post(ts.server.URL+"/results", "application/json", bytes.NewReader([]byte(`{"score": 10}`)))
	ts.Require().NoError(err)
	defer res.Body.Close()

	ts.Equal(http.StatusBadRequest, res.StatusCode)
}

func (ts *ResultsAPITestSuite) TestListResults() {
	ts.postResult("jane", "asteroids", 100)
	ts.postResult("joe", "asteroids", 80)

	res, err := http.Get(ts.server.URL + "/results")
	ts.Require().NoError(err)
	defer res.Body.Close()
	ts.Equal(http.StatusOK, res.StatusCode)

	var results []gameResultResponse
	ts.Require().NoError(json.NewDecoder(res.Body).Decode(&results))
	ts.Len(results, 2)
}

func (ts *ResultsAPITestSuite) TestGetResult_NotFound() {
	res, err := http.Get(ts.server.URL + "/results/999")
	ts.Require().NoError(err)
	defer res.Body.Close()

	ts.Equal(http.StatusNotFound, res.StatusCode)
}

func (ts *ResultsAPITestSuite) TestGetResult_InvalidID() {
	res, err := http.Get(ts.server.URL + "/results/not-a-number")
	ts.Require().NoError(err)
	defer res.Body.Close()

	ts.Equal(http.StatusBadRequest, res.StatusCode)
}

func (ts *ResultsAPITestSuite) TestUpdateResult() {
	created := ts.postResult("jane", "asteroids", 100)

	body, err := json.Marshal(gameResultRequest{Player: "jane", Game: "asteroids", Score: 120})
	ts.Require().NoError(err)

	req, err := http.NewRequest(http.MethodPut, fmt.Sprintf("%s/results/%d", ts.server.URL, created.ID), bytes.NewReader(body))
	ts.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	res, err := http.DefaultClient.Do(req)
	ts.Require().NoError(err)
	defer res.Body.Close()
	ts.Equal(http.StatusOK, res.StatusCode)

	updated := gameResultResponse{}
	ts.Require().NoError(json.NewDecoder(res.Body).Decode(&updated))
	ts.Equal(created.ID, updated.ID)
	ts.Equal(120, updated.Score)
}

func (ts *ResultsAPITestSuite) TestDeleteResult() {
	created := ts.postResult("jane", "asteroids", 100)

	req, err := http.NewRequest(http.MethodDelete, fmt.Sprintf("%s/results/%d", ts.server.URL, created.ID), nil)
	ts.Require().NoError(err)

	res, err := http.DefaultClient.Do(req)
	ts.Require().NoError(err)
	defer res.Body.Close()
	ts.Equal(http.StatusNoContent, res.StatusCode)

	res, err = http.DefaultClient.Do(req)
	ts.Require().NoError(err)
	defer res.Body.Close()
	ts.Equal(http.StatusNotFound, res.StatusCode)
}

func (ts *ResultsAPITestSuite) TestLeaderboard() {
	ts.postResult("joe", "asteroids", 80)
	ts.postResult("zoe", "asteroids", 100)
	ts.postResult("anna", "asteroids", 100)

	res, err := http.Get(ts.server.URL + "/leaderboard")
	ts.Require().NoError(err)
	defer res.Body.Close()
	ts.Equal(http.StatusOK, res.StatusCode)

	var board []gameResultResponse
	ts.Require().NoError(json.NewDecoder(res.Body).Decode(&board))
	ts.Require().Len(board, 3)
	ts.Equal("anna", board[0].Player)
	ts.Equal("zoe", board[1].Player)
	ts.Equal("joe", board[2].Player)
}

func (ts *ResultsAPITestSuite) TestHealthEndpoints() {
	for _, endpoint := range []string{"/healthz", "/readyz"} {
		res, err := http.Get(ts.server.URL + endpoint)
		ts.Require().NoError(err)
		res.Body.Close()
		ts.Equal(http.StatusOK, res.StatusCode)
	}
}
