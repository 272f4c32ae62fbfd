package render

const pageStyle = `* {
    margin: 0;
    padding: 0;
    box-sizing: border-box;
}

body {
    font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
    background: #f4f4f2;
    color: #2b2b2b;
    line-height: 1.5;
}

.container {
    max-width: 1400px;
    margin: 0 auto;
    padding: 24px 16px;
}

.header {
    text-align: center;
    margin-bottom: 24px;
}

.header h1 {
    font-size: 1.9em;
    margin-bottom: 4px;
}

.header p {
    color: #6b6b6b;
}

.controls {
    display: flex;
    flex-wrap: wrap;
    gap: 18px;
    align-items: center;
    justify-content: center;
    background: #fff;
    border: 1px solid #e0e0dc;
    border-radius: 8px;
    padding: 12px 16px;
    margin-bottom: 20px;
}

.control-group {
    display: flex;
    align-items: center;
    gap: 6px;
}

.control-group label {
    font-weight: 600;
    font-size: 0.9em;
}

.control-group select,
.control-group button {
    padding: 6px 10px;
    border: 1px solid #c9c9c4;
    border-radius: 6px;
    background: #fff;
    font-size: 0.9em;
    cursor: pointer;
}

.view-btn.active {
    background: #3b5b7c;
    color: #fff;
    border-color: #3b5b7c;
}

.table-container {
    overflow-x: auto;
    background: #fff;
    border: 1px solid #e0e0dc;
    border-radius: 8px;
}

table {
    width: 100%;
    border-collapse: collapse;
}

th, td {
    padding: 8px 10px;
    text-align: left;
    border-bottom: 1px solid #ececea;
    font-size: 0.9em;
    vertical-align: middle;
}

th {
    background: #3b5b7c;
    color: #fff;
    position: sticky;
    top: 0;
    white-space: nowrap;
}

tbody tr:hover {
    background: #f6f8fa;
}

.value-cell {
    font-weight: 600;
    white-space: nowrap;
}

.image-cell {
    text-align: center;
    color: #b5b5b0;
}

.coin-image {
    width: 56px;
    height: 56px;
    object-fit: cover;
    border-radius: 50%;
}

.grid-container {
    display: grid;
    grid-template-columns: repeat(auto-fill, minmax(260px, 1fr));
    gap: 16px;
}

.coin-card {
    background: #fff;
    border: 1px solid #e0e0dc;
    border-radius: 8px;
    overflow: hidden;
}

.coin-card-images {
    display: flex;
    justify-content: center;
    gap: 12px;
    padding: 16px;
    background: #f0f0ed;
}

.coin-card-images img {
    width: 110px;
    height: 110px;
    object-fit: cover;
    border-radius: 50%;
}

.coin-card-info {
    padding: 12px 16px 16px;
}

.coin-card-title {
    font-size: 1.1em;
    font-weight: 700;
    margin-bottom: 8px;
}

.coin-card-details {
    display: grid;
    grid-template-columns: auto 1fr;
    gap: 2px 10px;
    font-size: 0.85em;
}

.coin-card-details dt {
    color: #6b6b6b;
}

.coin-card-value {
    margin-top: 10px;
    font-weight: 700;
    color: #3b5b7c;
}

.footer {
    text-align: center;
    margin-top: 24px;
    color: #9a9a95;
    font-size: 0.85em;
}

.hidden {
    display: none !important;
}

@media (max-width: 768px) {
    .controls {
        gap: 10px;
    }

    .view-btn {
        display: none;
    }

    .grid-container {
        grid-template-columns: repeat(auto-fill, minmax(160px, 1fr));
        gap: 10px;
    }

    .coin-card-images img {
        width: 76px;
        height: 76px;
    }
}
`
