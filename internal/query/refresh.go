package query

import "context"

// RefreshPlayers invalidates every player query.
func (q *Queries) RefreshPlayers(ctx context.Context) error {
	_, err := q.cache.Invalidate(ctx, Key{FamilyPlayers})
	return err
}

// RefreshTeams invalidates every team query, standings included.
func (q *Queries) RefreshTeams(ctx context.Context) error {
	_, err := q.cache.Invalidate(ctx, Key{FamilyTeams})
	return err
}

// RefreshGames invalidates every game query, inning scores included.
func (q *Queries) RefreshGames(ctx context.Context) error {
	_, err := q.cache.Invalidate(ctx, Key{FamilyGames})
	return err
}

// RefreshAll drops the whole cache.
func (q *Queries) RefreshAll(ctx context.Context) error {
	return q.cache.Clear(ctx)
}
