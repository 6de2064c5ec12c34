package api

import (
	"bytes"
	"fmt"

	"github.com/fundsflow/fundsflow/internal/domain"
	"github.com/fundsflow/fundsflow/internal/service"
	"github.com/gofiber/fiber/v3"
)

type treeQuery struct {
	Q string `query:"q" validate:"max=100"`
}

type ledgerQuery struct {
	Kind string `query:"kind" validate:"omitempty,oneof=donation fee_payment transfer"`
	Q    string `query:"q" validate:"max=100"`
}

func (s *Server) bindQuery(c fiber.Ctx, out any) error {
	if err := c.Bind().Query(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return s.validate.Struct(out)
}

func dashboardParam(c fiber.Ctx) domain.Dashboard {
	return domain.Dashboard(c.Params("name"))
}

func (s *Server) handleDashboards(c fiber.Ctx) error {
	dashboards := s.svc.Trees.Dashboards()
	out := make([]*DashboardPayload, 0, len(dashboards))
	for _, d := range dashboards {
		out = append(out, &DashboardPayload{
			Name:  d,
			Label: d.Label(),
			Kind:  d.ContributionKind(),
		})
	}
	return c.JSON(success(out))
}

func (s *Server) handleTree(c fiber.Ctx) error {
	// * parse query
	q := new(treeQuery)
	if err := s.bindQuery(c, q); err != nil {
		return err
	}

	d := dashboardParam(c)
	result, err := s.svc.Trees.Search(c.Context(), d, q.Q)
	if err != nil {
		return err
	}
	return c.JSON(success(treePayload(d, result)))
}

func (s *Server) handleAnomalies(c fiber.Ctx) error {
	anomalies, err := s.svc.Anomalies.List(c.Context(), dashboardParam(c))
	if err != nil {
		return err
	}
	out := make([]*AnomalyPayload, 0, len(anomalies))
	for _, a := range anomalies {
		out = append(out, &AnomalyPayload{Anomaly: a, Title: a.Title()})
	}
	return c.JSON(success(out))
}

func (s *Server) handleLedger(c fiber.Ctx) error {
	// * parse query
	q := new(ledgerQuery)
	if err := s.bindQuery(c, q); err != nil {
		return err
	}

	entries, err := s.svc.Contributions.Recent(c.Context(), dashboardParam(c), domain.LedgerKind(q.Kind), q.Q)
	if err != nil {
		return err
	}
	return c.JSON(success(entryPayloads(entries)))
}

func (s *Server) handleExport(c fiber.Ctx) error {
	var buf bytes.Buffer
	doc, err := s.svc.Exports.Export(c.Context(), dashboardParam(c), &buf)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename="%s"`, service.ExportFileName(doc.Timestamp)))
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return c.Send(buf.Bytes())
}
