package api

import "rentafleet/internal/infra"

func isNotFound(err error) bool {
	return infra.IsKind(err, infra.KindNotFound)
}
