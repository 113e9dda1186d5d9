package token

import (
	"context"
	"math/big"
	"time"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/extra/bunbig"

	"github.com/evmscan/evmscan/addr"
	"github.com/evmscan/evmscan/internal/core"
	"github.com/evmscan/evmscan/internal/core/filter"
	"github.com/evmscan/evmscan/internal/core/paging"
	"github.com/evmscan/evmscan/internal/core/repository/paginate"
)

var _ filter.TokenRepository = (*Repository)(nil)

// collectionPreviewLimit caps how many instances each collection row carries.
const collectionPreviewLimit = 3

func decimalBig(s, what string) (*bunbig.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, errors.Wrap(core.ErrInvalidCursor, what)
	}
	return bunbig.FromMathBig(v), nil
}

func typesFilter(q *bun.SelectQuery, types []core.TokenType) *bun.SelectQuery {
	if len(types) == 0 {
		return q
	}
	return q.Where("token.token_type IN (?)", bun.In(types))
}

func (r *Repository) FilterNFTInstances(ctx context.Context, req *filter.NFTInstancesReq) (*filter.NFTInstancesRes, error) {
	defer core.Timer(time.Now(), "FilterNFTInstances(%s)", req.Owner)

	req.Norm()
	d := paging.Resolve(core.EntityNFTInstances, req.Sort, req.Order)

	res := &filter.NFTInstancesRes{Rows: []*core.NFTInstance{}}

	var rows []*core.NFTInstance
	q := r.pg.NewSelect().Model(&rows).Relation("Token")

	if req.Owner != nil {
		q = q.Where("owner_address = ?", req.Owner)
	}
	q = typesFilter(q, req.Types)

	if c := req.Cursor; c != nil && c.TokenContract != nil && c.TokenID != nil {
		id, err := decimalBig(*c.TokenID, "token_id")
		if err != nil {
			return res, err
		}
		q = paginate.Bound(q, &d, []string{"nft_instance.token_contract", "nft_instance.token_id"},
			[]interface{}{c.TokenContract, id}, false)
	}

	q = paginate.Order(q, []string{"nft_instance.token_contract", "nft_instance.token_id"}, d.Order)

	if err := q.Limit(req.Limit + 1).Scan(ctx); err != nil {
		return res, err
	}

	rows, hasMore := paginate.Trim(rows, req.Limit)
	res.Rows = rows
	if hasMore {
		last := rows[len(rows)-1]
		id := last.TokenID.String()
		res.NextPageParams = &paging.Cursor{
			TokenContract: &last.TokenContract,
			TokenID:       &id,
		}
	}
	return res, nil
}

type collectionRow struct {
	TokenContract addr.Address `bun:"token_contract"`
	Amount        uint64       `bun:"amount"`
}

func (r *Repository) FilterNFTCollections(ctx context.Context, req *filter.NFTCollectionsReq) (*filter.NFTCollectionsRes, error) {
	defer core.Timer(time.Now(), "FilterNFTCollections(%s)", req.Owner)

	req.Norm()
	d := paging.Resolve(core.EntityNFTCollections, req.Sort, req.Order)

	res := &filter.NFTCollectionsRes{Rows: []*filter.NFTCollection{}}

	var groups []collectionRow
	q := r.pg.NewSelect().Model((*core.NFTInstance)(nil)).
		ColumnExpr("nft_instance.token_contract").
		ColumnExpr("count(*) AS amount").
		Group("nft_instance.token_contract")

	if req.Owner != nil {
		q = q.Where("owner_address = ?", req.Owner)
	}
	if len(req.Types) > 0 {
		q = q.Join("JOIN tokens AS token ON token.contract_address = nft_instance.token_contract")
		q = typesFilter(q, req.Types)
	}

	if c := req.Cursor; c != nil && c.TokenContract != nil {
		q = paginate.Bound(q, &d, []string{"nft_instance.token_contract"},
			[]interface{}{c.TokenContract}, false)
	}

	q = paginate.Order(q, []string{"nft_instance.token_contract"}, d.Order)

	if err := q.Limit(req.Limit + 1).Scan(ctx, &groups); err != nil {
		return res, err
	}

	groups, hasMore := paginate.Trim(groups, req.Limit)

	for i := range groups {
		g := &groups[i]
		col := &filter.NFTCollection{
			TokenContract: g.TokenContract,
			Amount:        g.Amount,
		}

		tok, err := r.GetToken(ctx, &g.TokenContract)
		if err != nil && !errors.Is(err, core.ErrNotFound) {
			return res, err
		}
		col.Token = tok

		pq := r.pg.NewSelect().Model(&col.TokenInstances).
			Where("token_contract = ?", &g.TokenContract).
			OrderExpr("token_id ASC").
			Limit(collectionPreviewLimit)
		if req.Owner != nil {
			pq = pq.Where("owner_address = ?", req.Owner)
		}
		if err := pq.Scan(ctx); err != nil {
			return res, err
		}

		res.Rows = append(res.Rows, col)
	}

	if hasMore {
		last := groups[len(groups)-1]
		tc := last.TokenContract
		res.NextPageParams = &paging.Cursor{TokenContract: &tc}
	}
	return res, nil
}

func (r *Repository) FilterTokenBalances(ctx context.Context, req *filter.TokenBalancesReq) (*filter.TokenBalancesRes, error) {
	defer core.Timer(time.Now(), "FilterTokenBalances(%s)", req.Address)

	req.Norm()
	d := paging.Resolve(core.EntityTokenBalances, req.Sort, req.Order)

	res := &filter.TokenBalancesRes{Rows: []*core.TokenBalance{}}

	var rows []*core.TokenBalance
	q := r.pg.NewSelect().Model(&rows).Relation("Token")

	if req.Address != nil {
		q = q.Where("address_hash = ?", req.Address)
	}
	q = typesFilter(q, req.Types)

	if c := req.Cursor; c != nil && c.Value != nil && c.ID != nil {
		v, err := decimalBig(*c.Value, "value")
		if err != nil {
			return res, err
		}
		q = paginate.Bound(q, &d, []string{"token_balance.value", "token_balance.id"},
			[]interface{}{v, *c.ID}, false)
	}

	q = paginate.Order(q, []string{"token_balance.value", "token_balance.id"}, d.Order)

	if err := q.Limit(req.Limit + 1).Scan(ctx); err != nil {
		return res, err
	}

	rows, hasMore := paginate.Trim(rows, req.Limit)
	res.Rows = rows
	if hasMore {
		last := rows[len(rows)-1]
		v := last.Value.String()
		res.NextPageParams = &paging.Cursor{
			Value: &v,
			ID:    &last.ID,
		}
	}
	return res, nil
}
