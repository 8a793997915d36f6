package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for topica resources.
	uriScheme = "topica://"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "estimators",
		Name:        "estimators",
		Description: "Estimators accepted by the model_topics tool",
		MIMEType:    "application/json",
	}, s.handleEstimatorsResource)

	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "settings",
		Name:        "settings",
		Description: "Defaults applied to omitted model_topics arguments",
		MIMEType:    "application/json",
	}, s.handleSettingsResource)
}

// handleEstimatorsResource lists the registered estimators.
func (s *Server) handleEstimatorsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type estimatorInfo struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}

	estimators := s.ports.Topics.Estimators()
	infos := make([]estimatorInfo, len(estimators))
	for i, e := range estimators {
		infos[i] = estimatorInfo{Name: e.String(), Description: e.Description()}
	}

	return jsonResource(req.Params.URI, infos, "estimators")
}

// handleSettingsResource returns the model defaults.
func (s *Server) handleSettingsResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	type settingsInfo struct {
		NumTopics  int     `json:"num_topics"`
		TopWords   int     `json:"top_words"`
		Estimator  string  `json:"estimator"`
		Seed       uint64  `json:"seed"`
		Iterations int     `json:"iterations"`
		Alpha      float64 `json:"alpha"`
		Eta        float64 `json:"eta"`
	}

	st := s.settings()
	info := settingsInfo{
		NumTopics:  st.Model.NumTopics,
		TopWords:   st.Model.TopWords,
		Estimator:  st.Model.Estimator.String(),
		Seed:       st.Model.Seed,
		Iterations: st.Model.Iterations,
		Alpha:      st.Model.Alpha,
		Eta:        st.Model.Eta,
	}

	return jsonResource(req.Params.URI, info, "settings")
}

func jsonResource(uri string, v any, what string) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling %s: %w", what, err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
