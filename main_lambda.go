//go:build lambda

package main

import (
	"context"
	_ "embed"
	"encoding/base64"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
)

//go:embed food_state.json
var embeddedCatalog string

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type planRequest struct {
	Budget            float64  `json:"budget"`
	Cravings          []string `json:"cravings"`
	CravingsSatisfied int      `json:"cravingsSatisfied"`
}

type planResponse struct {
	FinalSP       float64    `json:"finalSp"`
	TotalCalories float64    `json:"totalCalories"`
	Steps         []PlanStep `json:"steps"`
	Detail        string     `json:"detail"`
}

func handler(_ context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(400, "invalid base64 body")
		}
		body = string(decoded)
	}

	var req planRequest
	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return errResp(400, "invalid JSON: "+err.Error())
	}
	if req.Budget <= 0 {
		return errResp(400, "missing or non-positive budget")
	}

	foods, err := parseFoods(embeddedCatalog)
	if err != nil {
		return errResp(500, "embedded catalog: "+err.Error())
	}

	state := NewFoodState(foods)
	plan := GeneratePlan(state, req.Cravings, req.CravingsSatisfied, req.Budget, DefaultKnobs())

	finalSP := CurrentSP(state, req.Cravings, req.CravingsSatisfied)
	if len(plan) > 0 {
		finalSP = plan[len(plan)-1].NewTotalSP
	}
	resp := planResponse{
		FinalSP:       finalSP,
		TotalCalories: state.TotalStomachCalories(),
		Steps:         plan,
		Detail:        FormatPlan(plan, req.Budget),
	}
	respJSON, _ := json.Marshal(resp)
	return events.LambdaFunctionURLResponse{StatusCode: 200, Headers: jsonHeader, Body: string(respJSON)}, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{StatusCode: code, Headers: jsonHeader, Body: string(body)}, nil
}

func main() {
	lambda.Start(handler)
}
