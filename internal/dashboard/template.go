package dashboard

// layoutHTML is the single-page layout: a sidebar selecting one section, a
// card row, summary tables, insights, and one iframe per chart.
const layoutHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>AeroFit Analytics</title>
<style>
  :root { --bg:#0e1117; --card:#1e1e1e; --accent:#4a90e2; --text:#ffffff; --subtext:#a0aec0; --grid:#2d3748; }
  * { box-sizing: border-box; }
  body { margin:0; display:flex; min-height:100vh; background:var(--bg); color:var(--text);
         font-family:-apple-system, "Segoe UI", Roboto, sans-serif; }
  nav { width:230px; background:var(--card); padding:1rem; border-right:1px solid rgba(255,255,255,.1); }
  nav h1 { font-size:1.1rem; }
  nav a { display:block; color:var(--text); text-decoration:none; padding:.5rem .6rem; border-radius:.4rem; margin:.15rem 0; }
  nav a.active, nav a:hover { background:rgba(74,144,226,.25); }
  .metrics { margin-top:1rem; padding:.7rem; background:var(--bg); border-radius:.4rem; font-size:.85rem; color:var(--subtext); }
  main { flex:1; padding:1.2rem 1.6rem; }
  .cards { display:flex; gap:1rem; flex-wrap:wrap; }
  .card { background:linear-gradient(45deg, var(--card), var(--grid)); border:1px solid rgba(74,144,226,.3);
          border-radius:.5rem; padding:1rem; min-width:160px; }
  .card .value { font-size:1.4rem; font-weight:bold; color:var(--accent); }
  .card .label { font-size:.8rem; color:var(--subtext); }
  table { border-collapse:collapse; margin:1rem 0; background:var(--card); }
  th, td { padding:.4rem .8rem; border:1px solid var(--grid); }
  th { background:var(--grid); }
  .insights { background:linear-gradient(45deg, var(--card), var(--grid)); border-left:4px solid var(--accent);
              border-radius:.5rem; padding:.8rem 1.2rem; margin:1rem 0; }
  iframe { width:100%; height:520px; border:1px solid rgba(255,255,255,.1); border-radius:.5rem;
           background:#fff; margin:.6rem 0; }
  footer { color:var(--subtext); font-size:.75rem; margin-top:2rem; }
</style>
</head>
<body>
<nav>
  <h1>AeroFit Analytics</h1>
  {{range .Sections}}<a href="/?section={{.Slug}}"{{if eq .Slug $.Active}} class="active"{{end}}>{{.Title}}</a>{{end}}
  <div class="metrics">
    <div>Total customers: {{.Customers}}</div>
    <div>Average age: {{.AvgAge}}</div>
    <div>Average income: {{.AvgIncome}}</div>
  </div>
</nav>
<main>
  <h2>{{.View.Title}}</h2>
  {{if .View.Cards}}<div class="cards">
    {{range .View.Cards}}<div class="card"><div class="value">{{.Value}}</div><div class="label">{{.Label}}</div></div>{{end}}
  </div>{{end}}
  {{range .View.Tables}}
  <table>
    <caption>{{.Title}}</caption>
    <tr>{{range .Header}}<th>{{.}}</th>{{end}}</tr>
    {{range .Rows}}<tr>{{range .}}<td>{{.}}</td>{{end}}</tr>{{end}}
  </table>
  {{end}}
  {{if .View.Insights}}<div class="insights"><ul>
    {{range .View.Insights}}<li>{{.}}</li>{{end}}
  </ul></div>{{end}}
  {{range .View.ChartIDs}}<iframe src="/charts/{{.}}" loading="lazy"></iframe>{{end}}
  <footer>Snapshot {{.Snapshot}}</footer>
</main>
</body>
</html>`
