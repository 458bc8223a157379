package main

import "net/http"

func (s *server) handleViewer(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(viewerHTML))
}

// viewerHTML is the interactive demo page. It cycles the iteration
// budget between 10 and 100 on a timer, re-requesting /fractal each
// step, and listens on /ws for the server's own render timings. When
// responses slow down past the cycle period it backs off and shows the
// overload banner.
const viewerHTML = `<!DOCTYPE html>
<html>
<head>
<title>Fractal Viewer - Live Iteration Cycling</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body {
	font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
	background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
	min-height: 100vh;
	padding: 20px;
	color: white;
}
.container { max-width: 1000px; margin: 0 auto; }
header { text-align: center; margin-bottom: 20px; }
.panel {
	background: rgba(255,255,255,0.1);
	border-radius: 16px;
	padding: 16px;
	margin-bottom: 16px;
}
.status-bar {
	display: flex;
	justify-content: space-between;
	align-items: center;
	font-size: 1.1rem;
}
.metric {
	background: rgba(0,0,0,0.3);
	padding: 5px 10px;
	border-radius: 5px;
	font-family: 'Monaco', 'Consolas', monospace;
}
.iteration-display {
	font-size: 1.6rem;
	font-weight: bold;
	font-family: 'Monaco', 'Consolas', monospace;
	background: rgba(255,255,255,0.2);
	padding: 8px 16px;
	border-radius: 12px;
}
.overload-warning {
	display: none;
	background: linear-gradient(45deg, #ff0000, #ff6b6b);
	padding: 16px;
	border-radius: 12px;
	text-align: center;
	font-size: 1.3rem;
	font-weight: bold;
	margin-bottom: 16px;
}
.controls { display: flex; flex-wrap: wrap; gap: 14px; align-items: center; }
.control-group { display: flex; align-items: center; gap: 8px; }
input[type="range"] { width: 180px; }
button {
	background: rgba(255,255,255,0.9);
	color: #333;
	border: none;
	padding: 8px 16px;
	border-radius: 8px;
	font-weight: 600;
	cursor: pointer;
}
.image-wrapper {
	border-radius: 12px;
	background: #000;
	text-align: center;
	min-height: 400px;
}
#fractalImage { max-width: 100%; }
</style>
</head>
<body>
<div class="container">
	<header>
		<h1>Live Fractal Iteration Cycling</h1>
		<p>Watch the fractal evolve as iterations cycle from 10 to 100</p>
	</header>

	<div id="overloadWarning" class="overload-warning">SERVER OVERLOADED - SLOW RESPONSE</div>

	<div class="panel status-bar">
		<div>
			<span class="metric">iteration: <span id="currentIteration">10</span></span>
			<span class="metric">server render: <span id="renderTime">-</span></span>
			<span class="metric">response: <span id="responseTime">-</span></span>
		</div>
		<div class="iteration-display" id="iterationDisplay">10</div>
	</div>

	<div class="panel controls">
		<button onclick="toggleCycle()" id="cycleButton">Pause</button>
		<div class="control-group">
			<label>Speed:</label>
			<input type="range" id="speedSlider" min="100" max="2000" value="500" step="50">
			<span class="metric" id="speedValue">500ms</span>
		</div>
		<div class="control-group">
			<label>Zoom:</label>
			<input type="range" id="zoomSlider" min="0.1" max="5" value="1" step="0.01">
			<span class="metric" id="zoomValue">1.00x</span>
		</div>
	</div>

	<div class="panel image-wrapper">
		<img id="fractalImage" src="/fractal?w=800&h=600&iter=10" alt="Fractal">
	</div>
</div>

<script>
let currentIter = 10;
let cycleDirection = 1;
let isCycling = true;
let cycleSpeed = 500;
let cycleTimer = null;
let zoom = 1.0;
let requestStart = 0;
let slowLoads = 0;

const image = document.getElementById('fractalImage');
const cycleButton = document.getElementById('cycleButton');
const speedSlider = document.getElementById('speedSlider');
const speedValue = document.getElementById('speedValue');
const zoomSlider = document.getElementById('zoomSlider');
const zoomValue = document.getElementById('zoomValue');
const warning = document.getElementById('overloadWarning');

function scheduleNext() {
	if (cycleTimer) clearTimeout(cycleTimer);
	cycleTimer = setTimeout(loadNextIteration, cycleSpeed);
}

function toggleCycle() {
	isCycling = !isCycling;
	cycleButton.textContent = isCycling ? 'Pause' : 'Resume';
	if (isCycling) scheduleNext();
	else if (cycleTimer) clearTimeout(cycleTimer);
}

function loadNextIteration() {
	if (!isCycling) return;

	currentIter += cycleDirection;
	if (currentIter >= 100) { currentIter = 100; cycleDirection = -1; }
	else if (currentIter <= 10) { currentIter = 10; cycleDirection = 1; }

	document.getElementById('currentIteration').textContent = currentIter;
	document.getElementById('iterationDisplay').textContent = currentIter;

	requestStart = Date.now();
	image.src = '/fractal?w=800&h=600&iter=' + currentIter +
		'&zoom=' + zoom.toFixed(2) + '&t=' + requestStart;

	scheduleNext();
}

image.onload = function () {
	const elapsed = Date.now() - requestStart;
	document.getElementById('responseTime').textContent = elapsed + 'ms';

	if (elapsed > 2000) {
		if (++slowLoads > 2) warning.style.display = 'block';
	} else {
		slowLoads = 0;
		warning.style.display = 'none';
	}

	// Back off when the server cannot keep up with the cycle period.
	if (elapsed > cycleSpeed * 0.8) {
		cycleSpeed = Math.min(2000, Math.round(elapsed * 1.2));
		speedSlider.value = cycleSpeed;
		speedValue.textContent = cycleSpeed + 'ms';
	}
};

image.onerror = function () {
	warning.style.display = 'block';
	if (isCycling) scheduleNext();
};

speedSlider.addEventListener('input', function () {
	cycleSpeed = parseInt(this.value, 10);
	speedValue.textContent = cycleSpeed + 'ms';
	if (isCycling) scheduleNext();
});

zoomSlider.addEventListener('input', function () {
	zoom = parseFloat(this.value);
	zoomValue.textContent = zoom.toFixed(2) + 'x';
});

// Server-side render timings, when the websocket is available.
function connectEvents() {
	const proto = location.protocol === 'https:' ? 'wss:' : 'ws:';
	const ws = new WebSocket(proto + '//' + location.host + '/ws');
	ws.onmessage = function (msg) {
		const ev = JSON.parse(msg.data);
		document.getElementById('renderTime').textContent =
			ev.elapsed_ms.toFixed(1) + 'ms';
	};
	ws.onclose = function () { setTimeout(connectEvents, 2000); };
}

connectEvents();
scheduleNext();
</script>
</body>
</html>
`
