package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/imadgeboyega/vibesnap-backend/internal/state"
)

func TestMutationObserver(t *testing.T) {
	before := testutil.ToFloat64(mutationsTotal.WithLabelValues("toggleLike"))

	var o MutationObserver
	o.StateChanged("toggleLike", state.AppState{})
	o.StateChanged("toggleLike", state.AppState{})

	assert.Equal(t, before+2, testutil.ToFloat64(mutationsTotal.WithLabelValues("toggleLike")))
}

func TestPersistenceWrite(t *testing.T) {
	before := testutil.ToFloat64(persistenceWrites.WithLabelValues("vibesnap_posts", "ok"))
	PersistenceWrite("vibesnap_posts", "ok")
	assert.Equal(t, before+1, testutil.ToFloat64(persistenceWrites.WithLabelValues("vibesnap_posts", "ok")))
}
