package render

// pageScript is the in-page controller. All transient presentation
// state lives in one state object; every handler reads the controls,
// updates the state and reapplies it to both views.
const pageScript = `(function () {
    'use strict';

    var MOBILE_THRESHOLD = 768;

    var state = {
        view: 'list',
        sortKey: '',
        sortAsc: true,
        issuer: '',
        denomination: ''
    };

    function isMobile() {
        return window.innerWidth <= MOBILE_THRESHOLD;
    }

    function rows() {
        return Array.prototype.slice.call(document.querySelectorAll('#tableBody tr'));
    }

    function cards() {
        return Array.prototype.slice.call(document.querySelectorAll('#gridContainer .coin-card'));
    }

    function setView(mode) {
        if (isMobile()) {
            mode = 'grid';
        }
        state.view = mode;
        document.getElementById('tableContainer').classList.toggle('hidden', mode !== 'list');
        document.getElementById('gridContainer').classList.toggle('hidden', mode !== 'grid');
        document.getElementById('listViewBtn').classList.toggle('active', mode === 'list');
        document.getElementById('gridViewBtn').classList.toggle('active', mode === 'grid');
    }

    function toggleSortOrder() {
        state.sortAsc = !state.sortAsc;
        document.getElementById('sortOrderBtn').textContent = state.sortAsc ? '↑' : '↓';
        sortCoins();
    }

    function compareBy(key, asc, a, b) {
        var result;
        if (key === 'year' || key === 'value') {
            var an = parseFloat(a.dataset[key]);
            var bn = parseFloat(b.dataset[key]);
            if (isNaN(an)) { an = 0; }
            if (isNaN(bn)) { bn = 0; }
            result = an - bn;
        } else {
            var as = (a.dataset[key] || '').toLowerCase();
            var bs = (b.dataset[key] || '').toLowerCase();
            result = as.localeCompare(bs);
        }
        return asc ? result : -result;
    }

    function reorder(container, items, key) {
        var indexed = items.map(function (el, i) { return { el: el, i: i }; });
        indexed.sort(function (a, b) {
            // index tiebreak keeps equal entries in their current order
            return compareBy(key, state.sortAsc, a.el, b.el) || (a.i - b.i);
        });
        indexed.forEach(function (entry) { container.appendChild(entry.el); });
    }

    function sortCoins() {
        state.sortKey = document.getElementById('sortSelect').value;
        if (!state.sortKey) {
            return;
        }
        reorder(document.getElementById('tableBody'), rows(), state.sortKey);
        reorder(document.getElementById('gridContainer'), cards(), state.sortKey);
    }

    function populateFilters() {
        var issuers = {};
        rows().forEach(function (row) {
            var issuer = (row.dataset.issuer || '').trim();
            if (issuer) {
                issuers[issuer] = true;
            }
        });
        var select = document.getElementById('issuerFilter');
        Object.keys(issuers).sort(function (a, b) {
            return a.toLowerCase().localeCompare(b.toLowerCase());
        }).forEach(function (issuer) {
            var option = document.createElement('option');
            option.value = issuer;
            option.textContent = issuer;
            select.appendChild(option);
        });
        updateDenominationFilter();
    }

    function updateDenominationFilter() {
        var issuer = state.issuer.toLowerCase();
        var counts = {};
        rows().forEach(function (row) {
            if (issuer && (row.dataset.issuer || '').toLowerCase() !== issuer) {
                return;
            }
            var denomination = (row.dataset.denomination || '').trim();
            if (denomination) {
                counts[denomination] = (counts[denomination] || 0) + 1;
            }
        });

        var select = document.getElementById('denominationFilter');
        var previous = select.value;
        while (select.options.length > 1) {
            select.remove(1);
        }
        Object.keys(counts).sort(function (a, b) {
            return a.toLowerCase().localeCompare(b.toLowerCase());
        }).forEach(function (denomination) {
            var option = document.createElement('option');
            option.value = denomination;
            option.textContent = denomination + ' (' + counts[denomination] + ')';
            select.appendChild(option);
        });

        // keep the previous choice when it survives the issuer change
        select.value = previous;
        if (select.selectedIndex < 0) {
            select.value = '';
        }
        state.denomination = select.value;
    }

    function filterCoins() {
        state.issuer = document.getElementById('issuerFilter').value;
        updateDenominationFilter();
        state.denomination = document.getElementById('denominationFilter').value;

        var issuer = state.issuer.toLowerCase();
        var denomination = state.denomination.toLowerCase();
        var matches = function (el) {
            var issuerOK = !issuer || (el.dataset.issuer || '').toLowerCase() === issuer;
            var denominationOK = !denomination || (el.dataset.denomination || '').toLowerCase() === denomination;
            return issuerOK && denominationOK;
        };

        rows().forEach(function (row) {
            row.classList.toggle('hidden', !matches(row));
        });
        cards().forEach(function (card) {
            card.classList.toggle('hidden', !matches(card));
        });
    }

    function handleResize() {
        // one-way: widening the viewport back does not restore list view
        if (isMobile() && state.view !== 'grid') {
            setView('grid');
        }
    }

    window.setView = setView;
    window.toggleSortOrder = toggleSortOrder;
    window.sortCoins = sortCoins;
    window.filterCoins = filterCoins;
    window.addEventListener('resize', handleResize);

    populateFilters();
    setView(isMobile() ? 'grid' : 'list');
})();
`
