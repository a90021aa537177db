package dashboard

// paginaHTML is the single dashboard page. The page fetches the data
// endpoint on every filter change and draws the charts with Plotly from
// the server-built specifications.
const paginaHTML = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>DCS – Reid &amp; Compañía</title>
<script src="https://cdn.plot.ly/plotly-2.27.0.min.js"></script>
<style>
  body { font-family: sans-serif; margin: 0; background: #f5f5f5; }
  header { background: #1f2937; color: #fff; padding: 12px 24px; }
  header h1 { margin: 0; font-size: 20px; }
  header p { margin: 2px 0 0; font-size: 12px; color: #9ca3af; }
  .controles { display: flex; gap: 16px; align-items: center; padding: 12px 24px; background: #fff; border-bottom: 1px solid #e5e7eb; flex-wrap: wrap; }
  .controles label { font-size: 13px; margin-right: 4px; }
  .kpis { display: flex; gap: 16px; padding: 16px 24px; }
  .kpi { background: #fff; border: 1px solid #e5e7eb; border-radius: 6px; padding: 12px 20px; min-width: 140px; }
  .kpi .valor { font-size: 26px; font-weight: bold; }
  .kpi .nombre { font-size: 12px; color: #6b7280; }
  .graficos { display: grid; grid-template-columns: 1fr 1fr; gap: 16px; padding: 0 24px 24px; }
  .grafico { background: #fff; border: 1px solid #e5e7eb; border-radius: 6px; min-height: 360px; }
  .sin-datos { display: flex; align-items: center; justify-content: center; height: 360px; color: #6b7280; font-size: 14px; }
  #error { display: none; margin: 16px 24px; padding: 12px; background: #fee2e2; color: #991b1b; border-radius: 6px; }
  details { margin: 0 24px 24px; background: #fff; border: 1px solid #e5e7eb; border-radius: 6px; padding: 12px; }
  table { border-collapse: collapse; width: 100%; font-size: 13px; }
  th, td { border: 1px solid #e5e7eb; padding: 4px 8px; text-align: left; }
</style>
</head>
<body>
<header>
  <h1>Digital Culture Scan (DCS) – Reid &amp; Compañía S. A.</h1>
  <p>Presentado al Comité de Transformación Digital · Fuente: Comité TD Reid &amp; Co., 2025</p>
</header>
<div class="controles">
  <span><label for="area">Área</label><select id="area"></select></span>
  <span><label for="nivel">Nivel</label><select id="nivel"></select></span>
  <form id="subida">
    <label for="archivo">Sube el dataset Excel</label>
    <input type="file" id="archivo" name="dataset" accept=".xlsx,.csv">
  </form>
</div>
<div id="error"></div>
<div class="kpis">
  <div class="kpi"><div class="valor" id="kpi-enps">–</div><div class="nombre">eNPS Global</div></div>
  <div class="kpi"><div class="valor" id="kpi-promedio">–</div><div class="nombre">Promedio General</div></div>
  <div class="kpi"><div class="valor" id="kpi-respuestas">–</div><div class="nombre">N° Respuestas</div></div>
</div>
<div class="graficos">
  <div class="grafico" id="radar"></div>
  <div class="grafico" id="barras"></div>
  <div class="grafico" id="heatmap"></div>
  <div class="grafico" id="rag"></div>
</div>
<details>
  <summary>Ver datos filtrados (previa)</summary>
  <table id="tabla"></table>
</details>
<script>
function valores(puntos) { return puntos.map(function (p) { return p.valor; }); }
function etiquetas(puntos) { return puntos.map(function (p) { return p.etiqueta; }); }

function dibujarRadar(g) {
  var s = g.series[0];
  Plotly.newPlot('radar', [{
    type: 'scatterpolar', fill: 'toself', name: s.nombre,
    r: valores(s.puntos), theta: etiquetas(s.puntos)
  }], {
    title: g.titulo, showlegend: false,
    polar: { radialaxis: { visible: true, range: g.rangoY } },
    margin: { l: 40, r: 40, t: 60, b: 40 }
  });
}

function dibujarBarras(g) {
  if (g.sinDatos) { sinDatos('barras', g.mensaje); return; }
  var trazas = g.series.map(function (s) {
    return { type: 'bar', name: s.nombre, x: etiquetas(s.puntos), y: valores(s.puntos), marker: { color: s.color } };
  });
  Plotly.newPlot('barras', trazas, {
    title: g.titulo, barmode: 'group',
    xaxis: { title: g.ejeX }, yaxis: { title: g.ejeY, range: g.rangoY }
  });
}

function dibujarHeatmap(g) {
  if (g.sinDatos) { sinDatos('heatmap', g.mensaje); return; }
  Plotly.newPlot('heatmap', [{
    type: 'heatmap', x: g.columnas, y: g.filas, z: g.valores,
    colorscale: 'RdYlGn', reversescale: true,
    zmin: g.rangoColor[0], zmax: g.rangoColor[1]
  }], { title: g.titulo, xaxis: { title: g.ejeX }, yaxis: { title: g.ejeY } });
}

function dibujarRAG(g) {
  var porCategoria = {};
  g.puntosXY.forEach(function (p) {
    (porCategoria[p.categoria] = porCategoria[p.categoria] || []).push(p);
  });
  var trazas = Object.keys(porCategoria).map(function (cat) {
    var puntos = porCategoria[cat];
    return {
      type: 'scatter', mode: 'markers+text', name: cat,
      x: puntos.map(function (p) { return p.x; }),
      y: puntos.map(function (p) { return p.y; }),
      text: puntos.map(function (p) { return p.etiqueta; }),
      textposition: 'top center', marker: { size: 12 }
    };
  });
  Plotly.newPlot('rag', trazas, {
    title: g.titulo,
    xaxis: { title: g.ejeX, range: g.rangoX },
    yaxis: { title: g.ejeY, range: g.rangoY }
  });
}

function sinDatos(id, mensaje) {
  document.getElementById(id).innerHTML = '<div class="sin-datos">' + mensaje + '</div>';
}

function opciones(select, lista, actual) {
  select.innerHTML = '';
  lista.forEach(function (v) {
    var o = document.createElement('option');
    o.value = v; o.textContent = v; o.selected = (v === actual);
    select.appendChild(o);
  });
}

function dibujarTabla(t) {
  var html = '<tr>' + t.columnas.map(function (c) { return '<th>' + c + '</th>'; }).join('') + '</tr>';
  t.filas.forEach(function (fila) {
    html += '<tr>' + fila.map(function (c) { return '<td>' + c + '</td>'; }).join('') + '</tr>';
  });
  document.getElementById('tabla').innerHTML = html;
}

function actualizar() {
  var area = document.getElementById('area').value;
  var nivel = document.getElementById('nivel').value;
  var q = new URLSearchParams();
  if (area) q.set('area', area);
  if (nivel) q.set('nivel', nivel);
  fetch('/api/dashboard?' + q.toString())
    .then(function (res) { return res.json().then(function (d) { return { ok: res.ok, datos: d }; }); })
    .then(function (r) {
      var error = document.getElementById('error');
      if (!r.ok) { error.textContent = r.datos.error; error.style.display = 'block'; return; }
      error.style.display = 'none';
      var d = r.datos;
      document.getElementById('kpi-enps').textContent = d.kpis.enps;
      document.getElementById('kpi-promedio').textContent = d.kpis.promedioGeneral;
      document.getElementById('kpi-respuestas').textContent = d.kpis.respuestas;
      opciones(document.getElementById('area'), d.opciones.areas, area || d.opciones.areas[0]);
      opciones(document.getElementById('nivel'), d.opciones.niveles, nivel || d.opciones.niveles[0]);
      dibujarRadar(d.radar);
      dibujarBarras(d.barras);
      dibujarHeatmap(d.heatmap);
      dibujarRAG(d.rag);
      dibujarTabla(d.tabla);
    });
}

document.getElementById('area').addEventListener('change', actualizar);
document.getElementById('nivel').addEventListener('change', actualizar);
document.getElementById('archivo').addEventListener('change', function () {
  var archivo = this.files[0];
  if (!archivo) { return; }
  var cuerpo = new FormData();
  cuerpo.append('dataset', archivo);
  fetch('/api/dataset', { method: 'POST', body: cuerpo }).then(actualizar);
});
actualizar();
</script>
</body>
</html>
`
