package config

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/qdm12/gosettings"
	"github.com/qdm12/gosettings/reader"
	"github.com/qdm12/gotree"
	"github.com/ykanggit/goDaddy-API/internal/healthchecksio"
)

type Health struct {
	HealthchecksioBaseURL string
	HealthchecksioUUID    string
}

func (h *Health) setDefaults() {
	h.HealthchecksioBaseURL = gosettings.DefaultComparable(h.HealthchecksioBaseURL,
		healthchecksio.DefaultBaseURL)
}

func (h Health) Validate() (err error) {
	if h.HealthchecksioUUID == "" {
		return nil
	}
	_, err = uuid.Parse(h.HealthchecksioUUID)
	if err != nil {
		return fmt.Errorf("healthchecks.io UUID: %w", err)
	}
	return nil
}

func (h Health) String() string {
	return h.toLinesNode().String()
}

func (h Health) toLinesNode() *gotree.Node {
	if h.HealthchecksioUUID == "" {
		return gotree.New("Healthchecks.io: disabled")
	}
	node := gotree.New("Healthchecks.io")
	node.Appendf("Base URL: %s", h.HealthchecksioBaseURL)
	node.Appendf("UUID: %s", h.HealthchecksioUUID)
	return node
}

func (h *Health) read(r *reader.Reader) {
	h.HealthchecksioBaseURL = r.String("HEALTH_HEALTHCHECKSIO_BASE_URL", reader.ForceLowercase(false))
	h.HealthchecksioUUID = r.String("HEALTH_HEALTHCHECKSIO_UUID")
}
