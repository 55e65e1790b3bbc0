package web

import "html/template"

// pageTemplate lays the screen out like the original tool: a parameter
// sidebar on the left, the three-panel comparison and its interpretation on
// the right. Every input resubmits the form, so the figure follows the
// sliders without any client-side state.
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Finite Difference Method: Nonlinear &amp; Stiff BVP</title>
  <style>
    * { margin: 0; padding: 0; box-sizing: border-box; }
    body { font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; background: #fafafa; color: #222; }
    .container { display: flex; min-height: 100vh; }
    .sidebar { width: 300px; background: #f0f2f6; border-right: 1px solid #ddd; padding: 24px 20px; }
    .sidebar h2 { font-size: 15px; margin-bottom: 14px; }
    .sidebar hr { border: none; border-top: 1px solid #ccc; margin: 18px 0; }
    .field { margin-bottom: 14px; }
    .field label { display: block; font-size: 13px; margin-bottom: 4px; color: #444; }
    .field input[type=number] { width: 100%; padding: 6px 8px; border: 1px solid #ccc; border-radius: 4px; font-size: 14px; }
    .field input[type=range] { width: 80%; vertical-align: middle; }
    .field output { font-size: 13px; margin-left: 8px; }
    .main { flex: 1; padding: 28px 36px; overflow-x: auto; }
    .main h1 { font-size: 24px; margin-bottom: 12px; }
    .main h3 { font-size: 17px; margin: 22px 0 10px; }
    .main p { line-height: 1.55; margin-bottom: 10px; max-width: 72em; }
    .equation { font-family: 'Georgia', serif; font-style: italic; font-size: 17px; text-align: center; margin: 16px 0; }
    .note { background: #e8f0fe; border-left: 4px solid #4285f4; padding: 12px 16px; border-radius: 4px; margin: 14px 0; max-width: 72em; }
    .figure { margin: 12px 0; }
    ul.diagnostics { margin: 8px 0 8px 22px; line-height: 1.6; }
    a { color: #2563eb; }
  </style>
</head>
<body>
  <div class="container">
    <div class="sidebar">
      <form method="get" action="/">
        <h2>Model parameters</h2>
        <div class="field">
          <label for="lambda">&lambda; (stiffness parameter)</label>
          <input type="number" id="lambda" name="lambda" value="{{.Params.Lambda}}" step="0.5" onchange="this.form.submit()">
        </div>
        <div class="field">
          <label for="alpha">&alpha; (degree of nonlinearity)</label>
          <input type="number" id="alpha" name="alpha" value="{{.Params.Alpha}}" min="2" step="0.5" onchange="this.form.submit()">
        </div>
        <div class="field">
          <label for="t">Terminal time T</label>
          <input type="number" id="t" name="t" value="{{.Params.T}}" step="0.1" onchange="this.form.submit()">
        </div>
        <div class="field">
          <label for="x0">Boundary value x(0)</label>
          <input type="number" id="x0" name="x0" value="{{.Params.X0}}" step="0.1" onchange="this.form.submit()">
        </div>
        <div class="field">
          <label for="xt">Boundary value x(T)</label>
          <input type="number" id="xt" name="xt" value="{{.Params.XT}}" step="0.1" onchange="this.form.submit()">
        </div>
        <hr>
        <h2>Grid resolution</h2>
        <div class="field">
          <label for="n">Number of grid points N</label>
          <input type="range" id="n" name="n" value="{{.Params.N}}" min="50" max="500" step="25"
                 oninput="this.nextElementSibling.value=this.value" onchange="this.form.submit()">
          <output>{{.Params.N}}</output>
        </div>
      </form>
    </div>
    <div class="main">
      <h1>Finite Difference Method for a Nonlinear Boundary Value Problem</h1>
      <p>This application compares backward, central, and forward finite difference
         schemes applied to a <b>nonlinear and potentially stiff boundary value problem</b>.</p>
      <p class="equation">x&prime;(t) = f(x(t)) = &minus;&lambda;&thinsp;x(t) + x(t)<sup>&alpha;</sup>,
         &nbsp;&nbsp; x(0) = x<sub>0</sub>, &nbsp; x(T) = x<sub>T</sub></p>
      <div class="note">The power term introduces nonlinearity, while large values of &lambda;
         may lead to stiffness. The example highlights qualitative differences between
         one&ndash;sided and symmetric discretizations.</div>
      <h3>Comparison of finite difference schemes</h3>
      <div class="figure">{{.Figure}}</div>
      <p>Grid spacing h = T/N = {{printf "%.4g" .H}}.
         <a href="/plot.svg?{{.Query}}">Standalone SVG</a></p>
      <ul class="diagnostics">
        {{range .Notes}}<li>{{.}}</li>
        {{end}}
      </ul>
      <div class="note">In nonlinear and potentially stiff problems, symmetric finite
         difference schemes may generate spurious oscillatory modes even when the
         numerical solution remains bounded. Implicit one&ndash;sided discretizations
         better preserve the qualitative behavior of the continuous system.</div>
    </div>
  </div>
</body>
</html>
`))
