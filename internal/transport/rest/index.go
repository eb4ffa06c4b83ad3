package rest

import "net/http"

const indexPage = `<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><title>AlphaLearn</title></head>
<body>
<h1>AlphaLearn</h1>
<p>Learn one word for every letter of the alphabet, then test yourself.</p>
<p>API: <code>/api/register</code>, <code>/api/login</code>, <code>/api/words/{level}</code>,
<code>/api/sessions</code>, <code>/api/track</code>.</p>
</body>
</html>
`

// Index handles GET /.
func Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(indexPage)) //nolint:errcheck
}
