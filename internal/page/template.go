package page

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}{{with .Description}} - {{.}}{{end}}</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
            min-height: 100vh;
            padding: 20px;
            color: #333;
        }
        .container {
            max-width: 1200px;
            margin: 0 auto;
            background: rgba(255, 255, 255, 0.95);
            border-radius: 20px;
            padding: 30px;
        }
        h1 { text-align: center; font-size: 2.5rem; margin-bottom: 10px; }
        .description { text-align: center; color: #666; margin-bottom: 30px; font-size: 1.1rem; }
        .video-container {
            position: relative;
            width: 100%;
            padding-bottom: 56.25%;
            margin-bottom: 40px;
            border-radius: 15px;
            overflow: hidden;
        }
        #player, .video-container video {
            position: absolute;
            top: 0; left: 0; width: 100%; height: 100%;
            border: none;
        }
        .highlights-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(300px, 1fr));
            gap: 25px;
        }
        .highlight-card {
            background: white;
            border-radius: 15px;
            overflow: hidden;
            box-shadow: 0 8px 25px rgba(0, 0, 0, 0.1);
        }
        .card-thumbnail { width: 100%; height: 180px; object-fit: cover; cursor: pointer; }
        .card-content { padding: 20px; }
        .card-summary { font-size: 1rem; line-height: 1.6; margin-bottom: 15px; }
        .card-timestamp { color: #666; font-size: 0.9rem; font-weight: 500; margin-bottom: 15px; }
        .transcript-toggle { font-weight: 500; color: #667eea; cursor: pointer; display: inline-block; margin-top: 10px; }
        .transcript-content {
            display: none;
            margin-top: 15px;
            padding: 15px;
            background: #f8f9fa;
            border-radius: 8px;
            font-size: 0.9rem;
            line-height: 1.5;
            max-height: 150px;
            overflow-y: auto;
        }
    </style>
</head>
<body>
    <div class="container">
        <h1>{{.Title}}</h1>
        {{with .Description}}<p class="description">{{.}}</p>{{end}}

        {{if .VideoID}}
        <div class="video-container">
            <div id="player"></div>
        </div>
        {{else if .VideoFile}}
        <div class="video-container">
            <video id="player" src="{{.VideoFile}}" controls playsinline></video>
        </div>
        {{end}}

        <div class="highlights-grid">
        {{range .Cards}}
            <div class="highlight-card">
                <img src="{{.Thumbnail}}" alt="Thumbnail for segment starting at {{.Clock}}"
                     class="card-thumbnail" data-start="{{.StartSeconds}}">
                <div class="card-content">
                    <p class="card-timestamp">Starts at: {{.Clock}}{{with .Link}} &middot; <a href="{{.}}">Watch on YouTube</a>{{end}}</p>
                    <p class="card-summary">{{.Summary}}</p>
                    <div class="transcript-toggle" data-target="transcript-{{.Number}}">
                        Show Transcript
                    </div>
                    <div class="transcript-content" id="transcript-{{.Number}}">
                        <p>{{.Transcript}}</p>
                    </div>
                </div>
            </div>
        {{end}}
        </div>
    </div>

    <script>
        var player;
        var videoId = {{.VideoID}};

        function onYouTubeIframeAPIReady() {
            player = new YT.Player('player', {
                height: '100%',
                width: '100%',
                videoId: videoId,
                playerVars: { 'playsinline': 1 }
            });
        }

        function seekTo(seconds) {
            if (player && typeof player.seekTo === 'function') {
                player.seekTo(seconds, true);
            } else {
                var el = document.getElementById('player');
                if (el && 'currentTime' in el) {
                    el.currentTime = seconds;
                    el.play();
                }
            }
            window.scrollTo({ top: 0, behavior: 'smooth' });
        }

        function toggleTranscript(toggle) {
            var element = document.getElementById(toggle.dataset.target);
            if (element.style.display === "none" || element.style.display === "") {
                element.style.display = "block";
                toggle.textContent = "Hide Transcript";
            } else {
                element.style.display = "none";
                toggle.textContent = "Show Transcript";
            }
        }

        document.querySelectorAll('.card-thumbnail').forEach(function (el) {
            el.addEventListener('click', function () {
                seekTo(parseInt(el.dataset.start, 10));
            });
        });
        document.querySelectorAll('.transcript-toggle').forEach(function (el) {
            el.addEventListener('click', function () {
                toggleTranscript(el);
            });
        });
    </script>
    {{if .VideoID}}<script src="https://www.youtube.com/iframe_api"></script>{{end}}
</body>
</html>
`
