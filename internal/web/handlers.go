package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/armin-ahmadii/kociemba/internal/cfen"
	"github.com/armin-ahmadii/kociemba/internal/facelet"
	"github.com/armin-ahmadii/kociemba/internal/kociemba"
	"github.com/armin-ahmadii/kociemba/internal/notation"
)

// SolveRequest carries the cube to solve as either a 9-line facelet net
// or a CFEN string; exactly one should be set.
type SolveRequest struct {
	Net  string `json:"net,omitempty"`
	CFEN string `json:"cfen,omitempty"`
}

type SolveResponse struct {
	Solution string `json:"solution"`
	Moves    int    `json:"moves"`
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	html := `<!DOCTYPE html>
<html>
<head>
    <title>Cube Solver</title>
    <meta charset="utf-8">
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <style>
        body { font-family: Arial, sans-serif; max-width: 800px; margin: 0 auto; padding: 20px; }
        .container { background: #f5f5f5; padding: 20px; border-radius: 8px; }
        textarea, button { padding: 10px; margin: 5px; font-family: monospace; }
        button { background: #007cba; color: white; border: none; border-radius: 4px; cursor: pointer; }
        button:hover { background: #005a8b; }
        .result { background: white; padding: 15px; margin-top: 20px; border-radius: 4px; white-space: pre; }
    </style>
</head>
<body>
    <h1>Cube Solver</h1>
    <div class="container">
        <h2>Solve a facelet net</h2>
        <form id="solveForm">
            <textarea id="net" rows="9" cols="14" placeholder="   UUU
   UUU
   UUU
LLLFFFRRRBBB
LLLFFFRRRBBB
LLLFFFRRRBBB
   DDD
   DDD
   DDD"></textarea><br>
            <button type="submit">Solve</button>
        </form>
        <div id="result" class="result" style="display: none;"></div>
    </div>

    <script>
        document.getElementById('solveForm').addEventListener('submit', async (e) => {
            e.preventDefault();
            const net = document.getElementById('net').value;
            try {
                const response = await fetch('/api/solve', {
                    method: 'POST',
                    headers: { 'Content-Type': 'application/json' },
                    body: JSON.stringify({ net })
                });
                const result = await response.json();
                document.getElementById('result').textContent =
                    response.ok ? (result.solution || '(already solved)') + '  [' + result.moves + ' moves]'
                                : 'Error: ' + (result.error || response.statusText);
                document.getElementById('result').style.display = 'block';
            } catch (error) {
                document.getElementById('result').textContent = 'Error: ' + error.message;
                document.getElementById('result').style.display = 'block';
            }
        });
    </script>
</body>
</html>`

	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, html)
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req SolveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid JSON: %v", err))
		return
	}

	var c kociemba.Cube
	var err error
	switch {
	case req.Net != "":
		c, err = facelet.Parse(strings.Split(strings.TrimRight(req.Net, "\n"), "\n"))
	case req.CFEN != "":
		c, err = cfen.FromCFEN(req.CFEN)
	default:
		writeError(w, http.StatusBadRequest, "request must set either net or cfen")
		return
	}
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := kociemba.CheckReachable(c); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("unreachable cube: %v", err))
		return
	}

	moves, err := s.solver.Solve(c)
	if err != nil && err != kociemba.ErrTimeout && err != kociemba.ErrNoSolution {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(SolveResponse{
		Solution: notation.Format(moves),
		Moves:    len(moves),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
