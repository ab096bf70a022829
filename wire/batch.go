package wire

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/soypat/sat"
	"github.com/soypat/sat/helpers/satindex"
	"golang.org/x/sync/errgroup"
)

// Pair is a pair of polygons to be tested against each other.
type Pair struct {
	A sat.Polygon `json:"a" yaml:"a"`
	B sat.Polygon `json:"b" yaml:"b"`
}

// DecodePairs decodes a list of polygon pairs.
func (c *Codec) DecodePairs(data []byte) (pairs []Pair, err error) {
	defer recoverPanic(&err)
	err = c.decode("pairs", data, &pairs)
	return pairs, err
}

// DecodePolygons decodes a list of polygons.
func (c *Codec) DecodePolygons(data []byte) (polys []sat.Polygon, err error) {
	defer recoverPanic(&err)
	err = c.decode("polygons", data, &polys)
	return polys, err
}

// TestScene reports every colliding pair among polys using a broad phase
// so that only pairs with touching bounding circles reach the narrow phase.
func (c *Codec) TestScene(polys []sat.Polygon) (hits []satindex.PairHit, err error) {
	defer recoverPanic(&err)
	return satindex.New(polys).Pairs(c.tester)
}

// TestBatch tests every pair with at most limit pairs in flight. A limit
// below 1 means no limit. The returned slice is index aligned with pairs and
// holds nil for pairs that do not collide. The first error cancels the
// remaining work.
func (c *Codec) TestBatch(ctx context.Context, pairs []Pair, limit int) ([]*sat.Response, error) {
	results := make([]*sat.Response, len(pairs))
	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i := range pairs {
		i := i
		g.Go(func() (err error) {
			defer recoverPanic(&err)
			if err := ctx.Err(); err != nil {
				return err
			}
			r, ok, err := c.tester.Test(pairs[i].A, pairs[i].B)
			if err != nil {
				return fmt.Errorf("pair %d: %w", i, err)
			}
			if ok {
				results[i] = &r
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// EncodeResponses encodes a batch result as a JSON array with null for
// pairs that do not collide.
func EncodeResponses(rs []*sat.Response) ([]byte, error) {
	if rs == nil {
		rs = []*sat.Response{}
	}
	return json.Marshal(rs)
}
