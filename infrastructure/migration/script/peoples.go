package main

import (
	"fmt"
	"sort"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// flagEnabled é o valor das flags de controle na coleção peoples
const flagEnabled = "S"

// peopleDocument é um documento exportado da coleção peoples
type peopleDocument struct {
	KPIControl            string        `json:"kpi_control"`
	DashboardOrderControl string        `json:"dashboard_order_control"`
	KPIs                  []kpiDocument `json:"kpis"`
}

// kpiDocument guarda as metas como listas de mapas {"MM/AAAA": valor}
type kpiDocument struct {
	GMV []map[string]any `json:"GMV"`
	TPV []map[string]any `json:"TPV"`
}

type seedProfile struct {
	PeopleID               string
	KPIEnabled             bool
	OrderManagementEnabled bool
	Goals                  []domain.Goal
}

// parsePeoples converte o export {people_id: documento} em perfis ordenados por people_id
func parsePeoples(content []byte) ([]seedProfile, error) {
	var documents map[string]peopleDocument
	if err := json.Unmarshal(content, &documents); err != nil {
		return nil, fmt.Errorf("erro ao decodificar export: %w", err)
	}

	profiles := make([]seedProfile, 0, len(documents))
	for peopleID, doc := range documents {
		profile := seedProfile{
			PeopleID:               peopleID,
			KPIEnabled:             doc.KPIControl == flagEnabled,
			OrderManagementEnabled: doc.DashboardOrderControl == flagEnabled,
		}

		// só o primeiro documento de kpis é considerado
		if profile.KPIEnabled && len(doc.KPIs) > 0 {
			profile.Goals = append(profile.Goals, goalsOf(peopleID, domain.GoalMetricGMV, doc.KPIs[0].GMV)...)
			profile.Goals = append(profile.Goals, goalsOf(peopleID, domain.GoalMetricTPV, doc.KPIs[0].TPV)...)
		}

		profiles = append(profiles, profile)
	}

	sort.Slice(profiles, func(i, j int) bool {
		return profiles[i].PeopleID < profiles[j].PeopleID
	})

	return profiles, nil
}

func goalsOf(peopleID string, metric domain.GoalMetric, entries []map[string]any) []domain.Goal {
	table := domain.GoalTable{}
	for _, entry := range entries {
		for period, value := range entry {
			month, err := domain.ParseMonthKey(period)
			if err != nil {
				logrus.WithFields(logrus.Fields{
					"people_id": peopleID,
					"metric":    metric,
					"period":    period,
				}).Warn("Meta com período inválido ignorada")
				continue
			}
			table[month] = utils.ToDecimal(value)
		}
	}

	goals := make([]domain.Goal, 0, len(table))
	for _, month := range table.Months() {
		goals = append(goals, domain.Goal{
			PeopleID: peopleID,
			Metric:   metric,
			Month:    month,
			Target:   table[month].StringFixed(2),
		})
	}

	return goals
}
