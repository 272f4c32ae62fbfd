package render

// pageTemplate is the html/template for the generated collection page.
// Both views render from the same coin slice and expose the same data
// attributes, so the in-page controller can sort and filter either one
// without consulting the other.
const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>
{{.Style}}
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>{{.Title}}</h1>
            <p>Total: {{len .Coins}} coins</p>
        </div>

        <div class="controls">
            <div class="control-group">
                <label>View:</label>
                <button class="view-btn active" id="listViewBtn" onclick="setView('list')" title="List View">&#9776;</button>
                <button class="view-btn" id="gridViewBtn" onclick="setView('grid')" title="Grid View">&#9638;</button>
            </div>
            <div class="control-group">
                <label for="sortSelect">Sort by:</label>
                <select id="sortSelect" onchange="sortCoins()">
                    <option value="">-- Select --</option>
                    <option value="country">Country</option>
                    <option value="issuer">Issuer</option>
                    <option value="year">Year</option>
                    <option value="grade">Grade</option>
                    <option value="composition">Composition</option>
                    <option value="value">Value</option>
                </select>
                <button onclick="toggleSortOrder()" id="sortOrderBtn" title="Toggle sort order">&#8593;</button>
            </div>
            <div class="control-group">
                <label for="issuerFilter">Issuer:</label>
                <select id="issuerFilter" onchange="filterCoins()">
                    <option value="">All</option>
                </select>
            </div>
            <div class="control-group">
                <label for="denominationFilter">Denomination:</label>
                <select id="denominationFilter" onchange="filterCoins()">
                    <option value="">All</option>
                </select>
            </div>
        </div>

        <div class="table-container" id="tableContainer">
            <table>
                <thead>
                    <tr>
                        <th>Country</th>
                        <th>Issuer</th>
                        <th>Year</th>
                        <th>Denomination</th>
                        <th>Mintmark</th>
                        <th>Subject</th>
                        <th>Grade</th>
                        <th>Composition</th>
                        <th>Value</th>
                        <th>Obverse</th>
                        <th>Reverse</th>
                    </tr>
                </thead>
                <tbody id="tableBody">
{{- range .Coins}}
                    <tr data-country="{{.Country}}" data-issuer="{{.Issuer}}" data-denomination="{{.Denomination}}" data-year="{{.NumericYear}}" data-grade="{{.Grade}}" data-composition="{{.Composition}}" data-value="{{.NumericValue}}">
                        <td>{{cell .Country}}</td>
                        <td>{{cell .Issuer}}</td>
                        <td>{{cell .Year}}</td>
                        <td>{{cell .Denomination}}</td>
                        <td>{{cell .Mintmark}}</td>
                        <td>{{cell .Subject}}</td>
                        <td>{{cell .Grade}}</td>
                        <td>{{cell .Composition}}</td>
                        <td class="value-cell">{{cell .Value}}</td>
                        <td class="image-cell">{{if imageURL .ObverseURL}}<img src="{{.ObverseURL}}" alt="Obverse" class="coin-image" loading="lazy">{{else}}&mdash;{{end}}</td>
                        <td class="image-cell">{{if imageURL .ReverseURL}}<img src="{{.ReverseURL}}" alt="Reverse" class="coin-image" loading="lazy">{{else}}&mdash;{{end}}</td>
                    </tr>
{{- end}}
                </tbody>
            </table>
        </div>

        <div class="grid-container hidden" id="gridContainer">
{{- range .Coins}}
            <div class="coin-card" data-country="{{.Country}}" data-issuer="{{.Issuer}}" data-denomination="{{.Denomination}}" data-year="{{.NumericYear}}" data-grade="{{.Grade}}" data-composition="{{.Composition}}" data-value="{{.NumericValue}}">
                <div class="coin-card-images">
                    {{if imageURL .ObverseURL}}<img src="{{.ObverseURL}}" alt="Obverse" loading="lazy">{{end}}
                    {{if imageURL .ReverseURL}}<img src="{{.ReverseURL}}" alt="Reverse" loading="lazy">{{end}}
                </div>
                <div class="coin-card-info">
                    <div class="coin-card-title">{{.Denomination}}</div>
                    <dl class="coin-card-details">
                        <dt>Country:</dt><dd>{{.Country}}</dd>
                        <dt>Issuer:</dt><dd>{{.Issuer}}</dd>
                        <dt>Year:</dt><dd>{{.Year}}</dd>
                        <dt>Grade:</dt><dd>{{.Grade}}</dd>
                        <dt>Composition:</dt><dd>{{.Composition}}</dd>
                        {{- if .MetalWeight}}
                        <dt>Precious Metal Weight:</dt><dd>{{.MetalWeight}}</dd>
                        {{- end}}
                        {{- if .MeltValue}}
                        <dt>Melt Value:</dt><dd>{{.MeltValue}}</dd>
                        {{- end}}
                    </dl>
                    <div class="coin-card-value">{{.Value}}</div>
                </div>
            </div>
{{- end}}
        </div>

        <div class="footer">
            <p>Generated from a CoinSnap CSV export</p>
        </div>
    </div>

    <script>
{{.Script}}
    </script>
</body>
</html>
`
