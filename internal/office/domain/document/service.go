package document

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"
)

// Generator é o orquestrador de geração (docgen.Generator em produção).
type Generator interface {
	Generate(ctx context.Context, clientID, templateID, actorID uuid.UUID) (string, *bytes.Buffer, error)
}

type ClientCounter interface {
	Count(ctx context.Context) (int64, error)
}

type Service interface {
	Generate(ctx context.Context, clientID, templateID, actorID uuid.UUID) (string, *bytes.Buffer, error)
	List(ctx context.Context, filter Filter) ([]GeneratedDocument, int64, error)
	Dashboard(ctx context.Context) (Dashboard, error)
}

type serviceImpl struct {
	Repository Repository
	generator  Generator
	clients    ClientCounter
}

func NewService(repository Repository, generator Generator, clients ClientCounter) Service {
	return &serviceImpl{
		Repository: repository,
		generator:  generator,
		clients:    clients,
	}
}

func (s *serviceImpl) Generate(ctx context.Context, clientID, templateID, actorID uuid.UUID) (string, *bytes.Buffer, error) {
	return s.generator.Generate(ctx, clientID, templateID, actorID)
}

func (s *serviceImpl) List(ctx context.Context, filter Filter) ([]GeneratedDocument, int64, error) {
	return s.Repository.List(ctx, filter)
}

func (s *serviceImpl) Dashboard(ctx context.Context) (Dashboard, error) {
	totalClients, err := s.clients.Count(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("falha ao contar clientes: %w", err)
	}
	totalDocs, err := s.Repository.Count(ctx)
	if err != nil {
		return Dashboard{}, fmt.Errorf("falha ao contar documentos: %w", err)
	}
	recent, err := s.Repository.Recent(ctx, RecentLimit)
	if err != nil {
		return Dashboard{}, fmt.Errorf("falha ao buscar documentos recentes: %w", err)
	}

	return Dashboard{
		TotalClients:   totalClients,
		TotalDocuments: totalDocs,
		Recent:         recent,
	}, nil
}
