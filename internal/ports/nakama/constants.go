package nakama

const (
	// RpcQuickMatch is the Nakama RPC id clients call to get a Jolly table.
	RpcQuickMatch = "quick_match"

	// RpcInviteToken issues a signed token a client can hand to a friend to
	// join their match; RpcJoinByToken resolves such a token.
	RpcInviteToken = "invite_token"
	RpcJoinByToken = "join_by_token"

	// MatchNameJolly is the authoritative match handler name registered with Nakama.
	MatchNameJolly = "jolly_match"
)
