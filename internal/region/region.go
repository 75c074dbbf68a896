// Package region stores and validates Region records keyed by NOC code.
package region

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"

	"paralympics-api/pkg/model"
)

// ErrNotFound is returned when no region has the requested NOC code
var ErrNotFound = errors.New("region not found")

const selectRegion = `SELECT noc, region, COALESCE(notes, '') AS notes FROM regions`

// RegionService handles region operations
type RegionService struct {
	db  *sqlx.DB
	log zerolog.Logger
}

// NewRegionService creates a new region service
func NewRegionService(db *sqlx.DB, log zerolog.Logger) *RegionService {
	return &RegionService{
		db:  db,
		log: log,
	}
}

// GetRegions returns every region ordered by NOC code
func (s *RegionService) GetRegions(ctx context.Context) ([]model.Region, error) {
	regions := []model.Region{}
	err := s.db.SelectContext(ctx, &regions, selectRegion+" ORDER BY noc")
	if err != nil {
		return nil, fmt.Errorf("list regions: %w", err)
	}
	return regions, nil
}

// GetRegion returns the region with the given NOC code
func (s *RegionService) GetRegion(ctx context.Context, noc string) (*model.Region, error) {
	var region model.Region
	err := s.db.GetContext(ctx, &region, s.db.Rebind(selectRegion+" WHERE noc = ?"), noc)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get region %s: %w", noc, err)
	}
	return &region, nil
}

// CreateRegion validates the request, inserts the region and returns it as stored
func (s *RegionService) CreateRegion(ctx context.Context, req model.RegionCreateRequest) (*model.Region, error) {
	region, err := ValidateCreate(req)
	if err != nil {
		return nil, err
	}

	_, err = s.db.NamedExecContext(ctx,
		`INSERT INTO regions (noc, region, notes) VALUES (:noc, :region, :notes)`, region)
	if err != nil {
		return nil, fmt.Errorf("create region %s: %w", region.NOC, err)
	}

	s.log.Info().Str("noc", region.NOC).Msg("region created")
	return s.GetRegion(ctx, region.NOC)
}

// UpdateRegion applies the supplied fields to an existing region.
// The NOC code itself never changes.
func (s *RegionService) UpdateRegion(ctx context.Context, noc string, req model.RegionUpdateRequest) error {
	if err := ValidateUpdate(req); err != nil {
		return err
	}

	// Build update query
	sets := []string{}
	params := []interface{}{}

	if req.Region != nil {
		sets = append(sets, "region = ?")
		params = append(params, strings.TrimSpace(*req.Region))
	}
	if req.Notes != nil {
		sets = append(sets, "notes = ?")
		params = append(params, *req.Notes)
	}

	// Nothing to change, but the region still has to exist
	if len(sets) == 0 {
		_, err := s.GetRegion(ctx, noc)
		return err
	}

	query := s.db.Rebind("UPDATE regions SET " + strings.Join(sets, ", ") + " WHERE noc = ?")
	params = append(params, noc)

	s.log.Debug().Str("query", query).Str("noc", noc).Msg("updating region")
	result, err := s.db.ExecContext(ctx, query, params...)
	if err != nil {
		return fmt.Errorf("update region %s: %w", noc, err)
	}
	if err := requireRow(result); err != nil {
		return err
	}

	s.log.Info().Str("noc", noc).Msg("region updated")
	return nil
}

// DeleteRegion removes the region with the given NOC code
func (s *RegionService) DeleteRegion(ctx context.Context, noc string) error {
	result, err := s.db.ExecContext(ctx, s.db.Rebind("DELETE FROM regions WHERE noc = ?"), noc)
	if err != nil {
		return fmt.Errorf("delete region %s: %w", noc, err)
	}
	if err := requireRow(result); err != nil {
		return err
	}

	s.log.Info().Str("noc", noc).Msg("region deleted")
	return nil
}

func requireRow(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
