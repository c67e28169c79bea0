package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"campaign-insights/internal/core/domain"
	"campaign-insights/internal/core/port"
)

const campaignColumns = `id, platform, subject, title, sent_at,
	delivered, opens, clicks, unsubscribes, spam_complaints, bounces, hard_bounces, soft_bounces,
	open_rate, click_rate, unsubscribe_rate, bounce_rate, hard_bounce_rate, soft_bounce_rate`

const upsertCampaign = `INSERT INTO campaigns (` + campaignColumns + `, imported_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19, now())
ON CONFLICT (id) DO UPDATE SET
	platform = EXCLUDED.platform,
	subject = EXCLUDED.subject,
	title = EXCLUDED.title,
	sent_at = EXCLUDED.sent_at,
	delivered = EXCLUDED.delivered,
	opens = EXCLUDED.opens,
	clicks = EXCLUDED.clicks,
	unsubscribes = EXCLUDED.unsubscribes,
	spam_complaints = EXCLUDED.spam_complaints,
	bounces = EXCLUDED.bounces,
	hard_bounces = EXCLUDED.hard_bounces,
	soft_bounces = EXCLUDED.soft_bounces,
	open_rate = EXCLUDED.open_rate,
	click_rate = EXCLUDED.click_rate,
	unsubscribe_rate = EXCLUDED.unsubscribe_rate,
	bounce_rate = EXCLUDED.bounce_rate,
	hard_bounce_rate = EXCLUDED.hard_bounce_rate,
	soft_bounce_rate = EXCLUDED.soft_bounce_rate,
	imported_at = now()`

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// CampaignRepository implements port.CampaignRepository using pgxpool for
// PostgreSQL. Unavailable metrics are stored as NULL.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

var _ port.CampaignRepository = (*CampaignRepository)(nil)

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// SaveCampaigns upserts all campaigns in one transaction. Either every
// campaign is stored or none is. Repeated ids collapse to their last
// occurrence, so the count is the number of distinct rows written.
func (r *CampaignRepository) SaveCampaigns(ctx context.Context, campaigns []domain.Campaign) (int, error) {
	campaigns = lastByID(campaigns)
	if len(campaigns) == 0 {
		return 0, nil
	}
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	batch := &pgx.Batch{}
	for _, c := range campaigns {
		batch.Queue(upsertCampaign, campaignArgs(c)...)
	}
	results := tx.SendBatch(ctx, batch)
	stored := 0
	for range campaigns {
		var tag pgconn.CommandTag
		if tag, err = results.Exec(); err != nil {
			_ = results.Close()
			return 0, fmt.Errorf("upsert campaign: %w", err)
		}
		stored += int(tag.RowsAffected())
	}
	if err = results.Close(); err != nil {
		return 0, err
	}
	if err = tx.Commit(ctx); err != nil {
		return 0, err
	}
	return stored, nil
}

// lastByID drops earlier campaigns whose id appears again later. Order of
// first appearance is kept.
func lastByID(campaigns []domain.Campaign) []domain.Campaign {
	pos := make(map[string]int, len(campaigns))
	out := make([]domain.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if i, ok := pos[c.ID]; ok {
			out[i] = c
			continue
		}
		pos[c.ID] = len(out)
		out = append(out, c)
	}
	return out
}

// ListCampaigns returns campaigns matching filter ordered by send time.
func (r *CampaignRepository) ListCampaigns(ctx context.Context, filter port.CampaignFilter) ([]domain.Campaign, error) {
	query, args, err := listQuery(filter)
	if err != nil {
		return nil, err
	}
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Campaign, error) {
		return scanCampaign(row)
	})
}

// GetCampaign returns a campaign by id, or nil when it does not exist.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id)
	c, err := scanCampaign(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func listQuery(filter port.CampaignFilter) (string, []any, error) {
	q := psql.Select(campaignColumns).From("campaigns").OrderBy("sent_at", "id")
	if filter.Platform != "" {
		q = q.Where(sq.Eq{"platform": filter.Platform})
	}
	if !filter.From.IsZero() {
		q = q.Where(sq.GtOrEq{"sent_at": filter.From})
	}
	if !filter.To.IsZero() {
		q = q.Where(sq.LtOrEq{"sent_at": filter.To})
	}
	return q.ToSql()
}

func campaignArgs(c domain.Campaign) []any {
	return []any{
		c.ID, c.Platform, c.Subject, c.Title, c.SentAt,
		c.Delivered.Ptr(), c.Opens.Ptr(), c.Clicks.Ptr(), c.Unsubscribes.Ptr(),
		c.SpamComplaints.Ptr(), c.Bounces.Ptr(), c.HardBounces.Ptr(), c.SoftBounces.Ptr(),
		c.OpenRate.Ptr(), c.ClickRate.Ptr(), c.UnsubscribeRate.Ptr(),
		c.BounceRate.Ptr(), c.HardBounceRate.Ptr(), c.SoftBounceRate.Ptr(),
	}
}

// campaignRow mirrors one row of the campaigns table; nullable columns
// scan into pointers.
type campaignRow struct {
	counts [8]*int64
	rates  [6]*float64
}

func scanCampaign(row pgx.Row) (domain.Campaign, error) {
	var (
		c  domain.Campaign
		cr campaignRow
	)
	dest := []any{&c.ID, &c.Platform, &c.Subject, &c.Title, &c.SentAt}
	for i := range cr.counts {
		dest = append(dest, &cr.counts[i])
	}
	for i := range cr.rates {
		dest = append(dest, &cr.rates[i])
	}
	if err := row.Scan(dest...); err != nil {
		return domain.Campaign{}, err
	}
	c.SentAt = c.SentAt.UTC()

	c.Delivered = domain.FromPtr(cr.counts[0])
	c.Opens = domain.FromPtr(cr.counts[1])
	c.Clicks = domain.FromPtr(cr.counts[2])
	c.Unsubscribes = domain.FromPtr(cr.counts[3])
	c.SpamComplaints = domain.FromPtr(cr.counts[4])
	c.Bounces = domain.FromPtr(cr.counts[5])
	c.HardBounces = domain.FromPtr(cr.counts[6])
	c.SoftBounces = domain.FromPtr(cr.counts[7])

	c.OpenRate = domain.FromPtr(cr.rates[0])
	c.ClickRate = domain.FromPtr(cr.rates[1])
	c.UnsubscribeRate = domain.FromPtr(cr.rates[2])
	c.BounceRate = domain.FromPtr(cr.rates[3])
	c.HardBounceRate = domain.FromPtr(cr.rates[4])
	c.SoftBounceRate = domain.FromPtr(cr.rates[5])
	return c, nil
}
