package domain

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Profile guarda as permissões do painel e as tabelas de metas de um cliente
type Profile struct {
	PeopleID               string    `json:"people_id"`
	KPIEnabled             bool      `json:"kpi_enabled"`
	OrderManagementEnabled bool      `json:"order_management_enabled"`
	GMVGoals               GoalTable `json:"gmv_goals"`
	TPVGoals               GoalTable `json:"tpv_goals"`
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`
}

// Goal é uma linha da tabela de metas
type Goal struct {
	ID       string     `json:"id"`
	PeopleID string     `json:"people_id"`
	Metric   GoalMetric `json:"metric"`
	Month    MonthKey   `json:"month"`
	Target   string     `json:"target"`
}

// ProfileSummary é a resposta do endpoint de perfil
type ProfileSummary struct {
	PeopleID               string     `json:"people_id"`
	KPIEnabled             bool       `json:"kpi_enabled"`
	OrderManagementEnabled bool       `json:"order_management_enabled"`
	GoalMonths             []MonthKey `json:"goal_months"`
}

// SaveGoalRequest é o corpo do PUT de metas
type SaveGoalRequest struct {
	Metric GoalMetric      `json:"metric" validate:"required,oneof=GMV TPV"`
	Month  string          `json:"month" validate:"required,month_key"`
	Target decimal.Decimal `json:"target"`
}

var requestValidator = newRequestValidator()

func newRequestValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("month_key", func(fl validator.FieldLevel) bool {
		_, err := ParseMonthKey(fl.Field().String())
		return err == nil
	})
	return v
}

// Validate confere métrica e mês. O valor da meta é conferido por quem grava.
func (r SaveGoalRequest) Validate() error {
	return requestValidator.Struct(r)
}
