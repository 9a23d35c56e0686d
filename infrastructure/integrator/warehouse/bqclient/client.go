package bqclient

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-dashboard-api/internal/config"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

//go:generate mockgen -source=client.go -destination=mocks/client.go -package=mocks

// Row é uma linha do resultado com os nomes de coluna em minúsculas
type Row map[string]bigquery.Value

type Client interface {
	Query(ctx context.Context, sql string, args []any) ([]Row, error)
	Close() error
}

type BigQueryClient struct {
	client *bigquery.Client
}

func NewClient(ctx context.Context, cfg config.Warehouse) (Client, error) {
	var opts []option.ClientOption
	if cfg.CredentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.CredentialsJSON)))
	} else if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	projectID := cfg.ProjectID
	if projectID == "" {
		projectID = bigquery.DetectProjectID
	}

	client, err := bigquery.NewClient(ctx, projectID, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "bqclient: failed to create BigQuery client")
	}

	logrus.WithField("project_id", client.Project()).Info("Cliente BigQuery inicializado")

	return &BigQueryClient{client: client}, nil
}

// Query executa a consulta com parâmetros posicionais (?) e carrega todas as linhas
func (c *BigQueryClient) Query(ctx context.Context, sql string, args []any) ([]Row, error) {
	q := c.client.Query(sql)
	q.Parameters = make([]bigquery.QueryParameter, 0, len(args))
	for _, arg := range args {
		q.Parameters = append(q.Parameters, bigquery.QueryParameter{Value: arg})
	}

	startTime := time.Now()

	it, err := q.Read(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "bqclient: failed to run query")
	}

	rows := make([]Row, 0, it.TotalRows)
	for {
		var values map[string]bigquery.Value
		err := it.Next(&values)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "bqclient: failed to read row")
		}

		rows = append(rows, normalizeColumns(values))
	}

	logrus.WithFields(logrus.Fields{
		"rows":     len(rows),
		"duration": time.Since(startTime).String(),
	}).Debug("Consulta ao BigQuery concluída")

	return rows, nil
}

func (c *BigQueryClient) Close() error {
	return c.client.Close()
}

func normalizeColumns(values map[string]bigquery.Value) Row {
	row := make(Row, len(values))
	for column, value := range values {
		row[strings.ToLower(strings.TrimSpace(column))] = value
	}
	return row
}
