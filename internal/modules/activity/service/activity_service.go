package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"pustaka/internal/modules/activity/domain"
	activityout "pustaka/internal/modules/activity/port/out"
	"pustaka/internal/platform/clock"
	"pustaka/internal/platform/id"
)

type ActivityService struct {
	clock     clock.Clock
	idGen     id.Generator
	store     activityout.VisitStore
	projector activityout.VisitIndexProjector
	exporter  activityout.ReportExporter
}

func NewActivityService(clock clock.Clock, idGen id.Generator, store activityout.VisitStore, projector activityout.VisitIndexProjector, exporter activityout.ReportExporter) *ActivityService {
	return &ActivityService{clock: clock, idGen: idGen, store: store, projector: projector, exporter: exporter}
}

// RecordVisit appends one visit to the log. New records always carry an
// RFC 3339 timestamp; the bucketizer still accepts the legacy strings
// older logs contain.
func (s *ActivityService) RecordVisit(ctx context.Context, visitorID, name, gender, loginTime string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("visitor name is required")
	}
	if visitorID == "" {
		visitorID = s.idGen.New()
	}
	if loginTime == "" {
		loginTime = s.clock.Now().Format(time.RFC3339)
	}
	record := domain.VisitRecord{ID: visitorID, Name: name, Gender: gender, LoginTime: loginTime}
	if err := s.store.Append(ctx, record); err != nil {
		return err
	}
	return s.projector.UpsertVisit(ctx, record)
}

func (s *ActivityService) Dashboard(ctx context.Context) (domain.Totals, []domain.VisitRecord, int, error) {
	records, err := s.store.List(ctx)
	if err != nil {
		return domain.Totals{}, nil, 0, err
	}
	count, err := s.projector.CountVisits(ctx)
	if err != nil {
		return domain.Totals{}, nil, 0, err
	}
	return domain.Aggregate(records, s.clock.Now()), records, count, nil
}

func (s *ActivityService) Export(ctx context.Context, path string) (string, error) {
	if s.exporter == nil {
		return "", fmt.Errorf("report exporter is not configured")
	}
	records, err := s.store.List(ctx)
	if err != nil {
		return "", err
	}
	totals := domain.Aggregate(records, s.clock.Now())
	return s.exporter.Export(ctx, totals, records, path)
}

func (s *ActivityService) Reindex(ctx context.Context) error {
	if err := s.projector.Reset(ctx); err != nil {
		return err
	}
	records, err := s.store.List(ctx)
	if err != nil {
		return err
	}
	for _, record := range records {
		if err := s.projector.UpsertVisit(ctx, record); err != nil {
			return err
		}
	}
	return nil
}
