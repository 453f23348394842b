package handler

const indexHTML = `<!doctype html>
<html lang="ko">
<head>
<meta charset="utf-8">
<title>회사 정보 크롤러</title>
</head>
<body>
<h1>회사 정보 크롤러</h1>
<p>검색어를 한 줄에 하나씩 입력하세요.</p>
<textarea id="keywords" rows="4" cols="40"></textarea><br>
<label>최대 수집 건수 (0 = 제한 없음) <input id="maxCount" type="number" value="0"></label><br>
<button onclick="startCrawl()">시작</button>
<button onclick="stopCrawl()">중지</button>
<a href="/download">엑셀 다운로드</a>
<pre id="status"></pre>
<script>
function startCrawl() {
  const keywords = document.getElementById('keywords').value.split('\n');
  const maxCount = parseInt(document.getElementById('maxCount').value) || 0;
  fetch('/crawl', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({keywords: keywords, maxCount: maxCount, searchPages: 0})
  }).then(r => r.json()).then(d => show(d.message || d.error));
}
function stopCrawl() {
  fetch('/stop', {method: 'POST'}).then(r => r.json()).then(d => show(d.message || d.error));
}
function show(msg) { document.getElementById('status').textContent = msg; }
setInterval(() => {
  fetch('/status').then(r => r.json()).then(d => {
    if (d.progress) show(d.progress + ' (' + d.count + '건)');
  });
}, 2000);
</script>
</body>
</html>
`
